package service

import (
	"context"

	"dish-search-svc/internal/domain"
)

type SearchServiceInterface interface {
	SearchDishes(ctx context.Context, name, minPrice, maxPrice string) (*domain.SearchResult, error)
}

type DishRepository interface {
	FindTopDishes(ctx context.Context, name string, minPrice, maxPrice float64, limit int) ([]domain.DishMatch, error)
}

type SearchCache interface {
	SearchKey(name string, minPrice, maxPrice float64) string
	Get(ctx context.Context, key string) ([]domain.DishMatch, bool, error)
	Set(ctx context.Context, key string, matches []domain.DishMatch) error
}

type SearchPublisher interface {
	PublishSearch(ctx context.Context, msg domain.SearchEvent) error
}

var _ SearchServiceInterface = (*SearchService)(nil)
