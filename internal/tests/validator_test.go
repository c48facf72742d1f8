package tests

import (
	"testing"

	"dish-search-svc/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestValidateSearchParams(t *testing.T) {
	tests := []struct {
		name     string
		rawName  string
		rawMin   string
		rawMax   string
		wantErr  string
		wantName string
		wantMin  float64
		wantMax  float64
	}{
		{
			name:     "valid input",
			rawName:  "biryani",
			rawMin:   "150",
			rawMax:   "300",
			wantName: "biryani",
			wantMin:  150,
			wantMax:  300,
		},
		{
			name:     "name trimmed",
			rawName:  "  biryani  ",
			rawMin:   "0",
			rawMax:   "1000",
			wantName: "biryani",
			wantMin:  0,
			wantMax:  1000,
		},
		{
			name:     "equal bounds allowed",
			rawName:  "dosa",
			rawMin:   "200",
			rawMax:   "200",
			wantName: "dosa",
			wantMin:  200,
			wantMax:  200,
		},
		{
			name:    "missing name",
			rawName: "",
			rawMin:  "10",
			rawMax:  "20",
			wantErr: `Query parameter "name" is required`,
		},
		{
			name:    "whitespace name",
			rawName: "   ",
			rawMin:  "10",
			rawMax:  "20",
			wantErr: `Query parameter "name" is required`,
		},
		{
			name:    "missing minPrice",
			rawName: "biryani",
			rawMin:  "",
			rawMax:  "20",
			wantErr: `Query parameter "minPrice" is required`,
		},
		{
			name:    "missing maxPrice",
			rawName: "biryani",
			rawMin:  "10",
			rawMax:  "",
			wantErr: `Query parameter "maxPrice" is required`,
		},
		{
			name:    "all missing joins messages",
			rawName: "",
			rawMin:  "",
			rawMax:  "",
			wantErr: `Query parameter "name" is required; Query parameter "minPrice" is required; Query parameter "maxPrice" is required`,
		},
		{
			name:    "non numeric minPrice",
			rawName: "biryani",
			rawMin:  "abc",
			rawMax:  "300",
			wantErr: `"minPrice" and "maxPrice" must be numeric`,
		},
		{
			name:    "non numeric maxPrice",
			rawName: "biryani",
			rawMin:  "150",
			rawMax:  "xyz",
			wantErr: `"minPrice" and "maxPrice" must be numeric`,
		},
		{
			name:    "inverted range",
			rawName: "biryani",
			rawMin:  "300",
			rawMax:  "100",
			wantErr: `"minPrice" cannot be greater than "maxPrice"`,
		},
		{
			name:    "negative price",
			rawName: "biryani",
			rawMin:  "-5",
			rawMax:  "100",
			wantErr: "Prices cannot be negative",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			params, err := service.ValidateSearchParams(testCase.rawName, testCase.rawMin, testCase.rawMax)

			if testCase.wantErr != "" {
				assert.Error(t, err)
				var validationErr *service.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Equal(t, testCase.wantErr, validationErr.Message)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testCase.wantName, params.Name)
			assert.Equal(t, testCase.wantMin, params.MinPrice)
			assert.Equal(t, testCase.wantMax, params.MaxPrice)
		})
	}
}

func TestValidateSearchParams_RangeCheckedBeforeSign(t *testing.T) {
	// Both bounds negative and inverted: the range rule fires first.
	_, err := service.ValidateSearchParams("biryani", "-1", "-10")
	assert.EqualError(t, err, `"minPrice" cannot be greater than "maxPrice"`)
}
