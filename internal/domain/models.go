package domain

import "time"

// DishMatch is one ranked row of a dish search: a (restaurant, menu item)
// pair that matched the query, with its historical order count.
type DishMatch struct {
	RestaurantID   int     `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
	City           string  `json:"city"`
	DishName       string  `json:"dishName"`
	DishPrice      float64 `json:"dishPrice"`
	OrderCount     int     `json:"orderCount"`
}

type SearchResult struct {
	Restaurants []DishMatch `json:"restaurants"`
}

// SearchParams holds validated, normalized search input.
type SearchParams struct {
	Name     string
	MinPrice float64
	MaxPrice float64
}

type SearchEvent struct {
	Type      string    `json:"type"`
	Query     string    `json:"query"`
	MinPrice  float64   `json:"min_price"`
	MaxPrice  float64   `json:"max_price"`
	Results   int       `json:"results"`
	Timestamp time.Time `json:"timestamp"`
}
