package rating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRatingRecomputesAverage(t *testing.T) {
	aggregate := NewAggregate(10)

	aggregate.AddRating(4)
	assert.Equal(t, 1, aggregate.TotalReviews)
	assert.Equal(t, 4.0, aggregate.SumOfRatings)
	assert.Equal(t, 4.0, aggregate.AverageRating)

	aggregate.AddRating(2)
	assert.Equal(t, 2, aggregate.TotalReviews)
	assert.Equal(t, 6.0, aggregate.SumOfRatings)
	assert.Equal(t, 3.0, aggregate.AverageRating)
}

func TestUpdateRatingKeepsCount(t *testing.T) {
	aggregate := NewAggregate(10)
	aggregate.AddRating(4)
	aggregate.AddRating(2)

	require.NoError(t, aggregate.UpdateRating(4, 5))
	assert.Equal(t, 2, aggregate.TotalReviews)
	assert.Equal(t, 7.0, aggregate.SumOfRatings)
	assert.Equal(t, 3.5, aggregate.AverageRating)
}

func TestUpdateRatingOnEmptyAggregate(t *testing.T) {
	aggregate := NewAggregate(10)

	err := aggregate.UpdateRating(4, 5)
	assert.ErrorIs(t, err, ErrNoReviews)
	assert.Equal(t, 0.0, aggregate.AverageRating)
	assert.False(t, math.IsNaN(aggregate.AverageRating))
}

func TestRemoveRatingDownToZero(t *testing.T) {
	aggregate := NewAggregate(10)
	aggregate.AddRating(4)

	aggregate.RemoveRating(4)
	assert.Equal(t, 0, aggregate.TotalReviews)
	assert.Equal(t, 0.0, aggregate.SumOfRatings)
	assert.Equal(t, 0.0, aggregate.AverageRating)
	assert.False(t, math.IsNaN(aggregate.AverageRating))
}

func TestRemoveRatingNeverGoesNegative(t *testing.T) {
	aggregate := NewAggregate(10)

	aggregate.RemoveRating(3)
	assert.Equal(t, 0, aggregate.TotalReviews)
	assert.Equal(t, 0.0, aggregate.SumOfRatings)
	assert.Equal(t, 0.0, aggregate.AverageRating)
}

func TestReviewLifecycleScenario(t *testing.T) {
	aggregate := NewAggregate(10)

	aggregate.AddRating(4)
	assert.Equal(t, 4.0, aggregate.AverageRating)

	aggregate.AddRating(2)
	assert.Equal(t, 3.0, aggregate.AverageRating)

	require.NoError(t, aggregate.UpdateRating(4, 5))
	assert.Equal(t, 3.5, aggregate.AverageRating)

	aggregate.RemoveRating(2)
	assert.Equal(t, 1, aggregate.TotalReviews)
	assert.Equal(t, 5.0, aggregate.SumOfRatings)
	assert.Equal(t, 5.0, aggregate.AverageRating)
}
