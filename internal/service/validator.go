package service

import (
	"strconv"
	"strings"

	"dish-search-svc/internal/domain"
)

// ValidateSearchParams checks and normalizes the raw query parameters of a
// dish search. Missing-parameter checks run in one pass and their messages
// are joined, so a request lacking several parameters gets a single
// response naming all of them. Numeric, range and sign checks follow in
// that order. An empty or whitespace-only value counts as missing.
func ValidateSearchParams(name, minPrice, maxPrice string) (domain.SearchParams, error) {
	var missing []string

	if strings.TrimSpace(name) == "" {
		missing = append(missing, `Query parameter "name" is required`)
	}
	if strings.TrimSpace(minPrice) == "" {
		missing = append(missing, `Query parameter "minPrice" is required`)
	}
	if strings.TrimSpace(maxPrice) == "" {
		missing = append(missing, `Query parameter "maxPrice" is required`)
	}
	if len(missing) > 0 {
		return domain.SearchParams{}, NewValidationError(strings.Join(missing, "; "))
	}

	min, minErr := strconv.ParseFloat(strings.TrimSpace(minPrice), 64)
	max, maxErr := strconv.ParseFloat(strings.TrimSpace(maxPrice), 64)
	if minErr != nil || maxErr != nil {
		return domain.SearchParams{}, NewValidationError(`"minPrice" and "maxPrice" must be numeric`)
	}

	if min > max {
		return domain.SearchParams{}, NewValidationError(`"minPrice" cannot be greater than "maxPrice"`)
	}

	if min < 0 || max < 0 {
		return domain.SearchParams{}, NewValidationError("Prices cannot be negative")
	}

	return domain.SearchParams{
		Name:     strings.TrimSpace(name),
		MinPrice: min,
		MaxPrice: max,
	}, nil
}
