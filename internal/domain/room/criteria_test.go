package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCriteriaNormalizeDefaults(t *testing.T) {
	criteria := SearchCriteria{Page: -1, Size: 0, SortBy: "price; DROP TABLE rooms", SortDirection: "sideways"}
	criteria.Normalize()

	assert.Equal(t, 0, criteria.Page)
	assert.Equal(t, DefaultPageSize, criteria.Size)
	assert.Equal(t, SortByRating, criteria.SortBy)
	assert.Equal(t, SortDescending, criteria.SortDirection)
}

func TestSearchCriteriaNormalizeClampsSize(t *testing.T) {
	criteria := SearchCriteria{Size: 5000, SortBy: SortByPrice, SortDirection: SortAscending}
	criteria.Normalize()

	assert.Equal(t, MaxPageSize, criteria.Size)
	assert.Equal(t, SortByPrice, criteria.SortBy)
	assert.Equal(t, SortAscending, criteria.SortDirection)
}

func TestSuggestCriteriaNormalize(t *testing.T) {
	criteria := SuggestCriteria{Page: -3, Size: -1}
	criteria.Normalize()

	assert.Equal(t, 0, criteria.Page)
	assert.Equal(t, DefaultPageSize, criteria.Size)
}
