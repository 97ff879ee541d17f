package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-itinerary-service/internal/adapters/directions"
)

const (
	stopA = "126.98,37.57"
	stopB = "127.03,37.50"
	stopC = "127.05,37.48"
	stopD = "127.08,37.45"
	newer = "126.99,37.56"
)

func validatorFixture(legs []directions.MockLeg) (*SegmentResolver, *directions.MockRouteProvider) {
	provider := directions.NewMockRouteProvider(legs)
	return NewSegmentResolver(provider), provider
}

func TestValidateInsertionWithinBudget(t *testing.T) {
	resolver, _ := validatorFixture([]directions.MockLeg{
		{Origin: stopA, Waypoint: newer, Goal: stopB, DurationMillis: 1_500_000, Meters: 8000},
	})

	result, err := ValidateInsertion(context.Background(), ValidateInsertionRequest{
		Stops:            []string{stopA, stopB},
		NewStop:          newer,
		InsertAfterIndex: 0,
		MaxDurationHours: 12,
	}, resolver, NopPacer{})
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, 25, result.TotalDurationMinutes)
	assert.Equal(t, 8000.0, result.TotalDistanceMeters)
	assert.Equal(t, 8.00, result.TotalDistanceKm)
	assert.Equal(t, 720, result.MaxDurationMinutes)
	assert.Nil(t, result.ExceededByMinutes)
	require.NotNil(t, result.NewSegment)
	assert.Equal(t, 25, result.NewSegment.DurationMinutes)
	assert.Empty(t, result.SegmentDurations)
	assert.NotEmpty(t, result.Message)
}

func TestValidateInsertionExceedsBudget(t *testing.T) {
	resolver, _ := validatorFixture([]directions.MockLeg{
		{Origin: stopA, Waypoint: newer, Goal: stopB, DurationMillis: 1_500_000, Meters: 8000},
	})

	result, err := ValidateInsertion(context.Background(), ValidateInsertionRequest{
		Stops:            []string{stopA, stopB},
		NewStop:          newer,
		InsertAfterIndex: 0,
		MaxDurationHours: 0.3,
	}, resolver, NopPacer{})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, 25, result.TotalDurationMinutes)
	assert.Equal(t, 18, result.MaxDurationMinutes)
	require.NotNil(t, result.ExceededByMinutes)
	assert.Equal(t, 7, *result.ExceededByMinutes)
	assert.NotEmpty(t, result.Message)
}

func TestValidateInsertionExactBudgetIsValid(t *testing.T) {
	// 18 minutes against an 18-minute budget: rejection requires a
	// strictly greater total.
	resolver, _ := validatorFixture([]directions.MockLeg{
		{Origin: stopA, Waypoint: newer, Goal: stopB, DurationMillis: 1_080_000, Meters: 6000},
	})

	result, err := ValidateInsertion(context.Background(), ValidateInsertionRequest{
		Stops:            []string{stopA, stopB},
		NewStop:          newer,
		InsertAfterIndex: 0,
		MaxDurationHours: 0.3,
	}, resolver, NopPacer{})
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, 18, result.TotalDurationMinutes)
	assert.Nil(t, result.ExceededByMinutes)
}

func TestValidateInsertionDownstreamFallback(t *testing.T) {
	// B->C resolves, C->D does not: the missing leg gets the fixed
	// 30 min / 10 km estimate and the totals include it.
	resolver, _ := validatorFixture([]directions.MockLeg{
		{Origin: stopA, Waypoint: newer, Goal: stopB, DurationMillis: 1_500_000, Meters: 8000},
		{Origin: stopB, Goal: stopC, DurationMillis: 600_000, Meters: 2000},
	})

	result, err := ValidateInsertion(context.Background(), ValidateInsertionRequest{
		Stops:            []string{stopA, stopB, stopC, stopD},
		NewStop:          newer,
		InsertAfterIndex: 0,
		MaxDurationHours: 12,
	}, resolver, NopPacer{})
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, []int{10, 30}, result.SegmentDurations)
	assert.Equal(t, []float64{2000, 10000}, result.SegmentDistances)
	assert.Equal(t, 25+10+30, result.TotalDurationMinutes)
	assert.Equal(t, 20000.0, result.TotalDistanceMeters)
	assert.Equal(t, 20.00, result.TotalDistanceKm)
}

func TestValidateInsertionReusesPriorSegments(t *testing.T) {
	resolver, provider := validatorFixture([]directions.MockLeg{
		{Origin: stopA, Waypoint: newer, Goal: stopB, DurationMillis: 1_500_000, Meters: 8000},
	})

	result, err := ValidateInsertion(context.Background(), ValidateInsertionRequest{
		Stops:                 []string{stopA, stopB, stopC, stopD},
		NewStop:               newer,
		InsertAfterIndex:      0,
		MaxDurationHours:      12,
		PriorSegmentDurations: []int{12, 14},
		PriorSegmentDistances: []float64{3000, 4000},
	}, resolver, NopPacer{})
	require.NoError(t, err)

	// Only the new three-point leg hits the provider.
	assert.Equal(t, 1, provider.Calls)
	assert.Equal(t, []int{12, 14}, result.SegmentDurations)
	assert.Equal(t, []float64{3000, 4000}, result.SegmentDistances)
	assert.Equal(t, 25+12+14, result.TotalDurationMinutes)
	assert.Equal(t, 15000.0, result.TotalDistanceMeters)
}

func TestValidateInsertionNewSegmentUnavailable(t *testing.T) {
	// No legs at all: the load-bearing leg fails, downstream legs are
	// irrelevant, and the result is a formed invalid response rather
	// than an error.
	resolver, _ := validatorFixture(nil)

	result, err := ValidateInsertion(context.Background(), ValidateInsertionRequest{
		Stops:            []string{stopA, stopB, stopC, stopD},
		NewStop:          newer,
		InsertAfterIndex: 0,
		MaxDurationHours: 12,
	}, resolver, NopPacer{})
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Equal(t, 0, result.TotalDurationMinutes)
	assert.Equal(t, 0.0, result.TotalDistanceMeters)
	assert.Nil(t, result.NewSegment)
	assert.NotEmpty(t, result.Message)
}

func TestValidateInsertionPreconditions(t *testing.T) {
	resolver, provider := validatorFixture(nil)

	cases := []struct {
		name  string
		stops []string
		index int
	}{
		{name: "too few stops", stops: []string{stopA}, index: 0},
		{name: "too many stops", stops: []string{stopA, stopB, stopC, stopD, stopA, stopB, stopC, stopD}, index: 0},
		{name: "index past range", stops: []string{stopA, stopB, stopC, stopD, newer}, index: 5},
		{name: "negative index", stops: []string{stopA, stopB}, index: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateInsertion(context.Background(), ValidateInsertionRequest{
				Stops:            tc.stops,
				NewStop:          newer,
				InsertAfterIndex: tc.index,
				MaxDurationHours: 12,
			}, resolver, NopPacer{})

			var pre *PreconditionError
			require.ErrorAs(t, err, &pre)
		})
	}

	// Precondition violations never reach the provider.
	assert.Equal(t, 0, provider.Calls)
}

func TestValidateInsertionIsIdempotent(t *testing.T) {
	resolver, _ := validatorFixture([]directions.MockLeg{
		{Origin: stopA, Waypoint: newer, Goal: stopB, DurationMillis: 1_500_000, Meters: 8000},
		{Origin: stopB, Goal: stopC, DurationMillis: 600_000, Meters: 2000},
	})

	req := ValidateInsertionRequest{
		Stops:            []string{stopA, stopB, stopC},
		NewStop:          newer,
		InsertAfterIndex: 0,
		MaxDurationHours: 12,
	}

	first, err := ValidateInsertion(context.Background(), req, resolver, NopPacer{})
	require.NoError(t, err)
	second, err := ValidateInsertion(context.Background(), req, resolver, NopPacer{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
