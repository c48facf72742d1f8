package storage

import (
	"context"
	"database/sql"

	"dish-search-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// FindTopDishes runs the ranked search aggregation: menu items whose name
// contains the query substring and whose price falls inside the inclusive
// range, joined against their orders and ranked by order count. The inner
// join means a dish with no recorded orders never appears. Ties in
// order_count are returned in store order.
func (r *PostgresRepository) FindTopDishes(ctx context.Context, name string, minPrice, maxPrice float64, limit int) ([]domain.DishMatch, error) {
	likeName := "%" + name + "%"
	rows, err := r.DB.QueryContext(ctx, `
		SELECT
			r.id          AS restaurant_id,
			r.name        AS restaurant_name,
			r.city        AS city,
			mi.name       AS dish_name,
			mi.price      AS dish_price,
			COUNT(o.id)   AS order_count
		FROM menu_items mi
		JOIN restaurants r ON r.id = mi.restaurant_id
		JOIN orders o      ON o.menu_item_id = mi.id
		WHERE mi.name LIKE $1
		  AND mi.price BETWEEN $2 AND $3
		GROUP BY r.id, r.name, r.city, mi.id, mi.name, mi.price
		ORDER BY order_count DESC
		LIMIT $4`,
		likeName, minPrice, maxPrice, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.DishMatch
	for rows.Next() {
		var m domain.DishMatch
		if err := rows.Scan(&m.RestaurantID, &m.RestaurantName, &m.City, &m.DishName, &m.DishPrice, &m.OrderCount); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
