package service

import (
	"context"
	"time"

	"dish-search-svc/internal/domain"
)

// DefaultLimit caps how many ranked matches a search returns.
const DefaultLimit = 10

type SearchService struct {
	repository DishRepository
	cache      SearchCache
	publisher  SearchPublisher
}

func NewSearchService(repository DishRepository, cache SearchCache, publisher SearchPublisher) *SearchService {
	return &SearchService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
	}
}

// SearchDishes validates the raw parameters, then returns the top dishes
// matching the name substring within the price range, ranked by order
// count. Validation failures short-circuit before any store access.
// Cache and event publishing are best effort and never fail a search.
func (s *SearchService) SearchDishes(ctx context.Context, name, minPrice, maxPrice string) (*domain.SearchResult, error) {
	params, err := ValidateSearchParams(name, minPrice, maxPrice)
	if err != nil {
		return nil, err
	}

	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.SearchKey(params.Name, params.MinPrice, params.MaxPrice)
		if cached, ok, _ := s.cache.Get(ctx, cacheKey); ok {
			return &domain.SearchResult{Restaurants: cached}, nil
		}
	}

	matches, err := s.repository.FindTopDishes(ctx, params.Name, params.MinPrice, params.MaxPrice, DefaultLimit)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []domain.DishMatch{}
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKey, matches)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishSearch(ctx, domain.SearchEvent{
			Type:      "dish_search",
			Query:     params.Name,
			MinPrice:  params.MinPrice,
			MaxPrice:  params.MaxPrice,
			Results:   len(matches),
			Timestamp: time.Now(),
		})
	}

	return &domain.SearchResult{Restaurants: matches}, nil
}
