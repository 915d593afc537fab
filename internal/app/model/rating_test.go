package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateRating(t *testing.T) {
	tests := []struct {
		name        string
		ratings     []int
		wantAverage float64
		wantCount   int
	}{
		{
			name:        "No ratings",
			ratings:     nil,
			wantAverage: 0,
			wantCount:   0,
		},
		{
			name:        "Single rating",
			ratings:     []int{4},
			wantAverage: 4.0,
			wantCount:   1,
		},
		{
			name:        "Three ratings",
			ratings:     []int{5, 4, 5},
			wantAverage: 4.7,
			wantCount:   3,
		},
		{
			name:        "Half rounds up",
			ratings:     []int{5, 4, 5, 3}, // mean 4.25
			wantAverage: 4.3,
			wantCount:   4,
		},
		{
			name:        "All ones",
			ratings:     []int{1, 1, 1},
			wantAverage: 1.0,
			wantCount:   3,
		},
		{
			name:        "Exact mean unchanged",
			ratings:     []int{2, 4}, // mean 3.0
			wantAverage: 3.0,
			wantCount:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			average, count := AggregateRating(tt.ratings)
			assert.InDelta(t, tt.wantAverage, average, 1e-9)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestRatingLabel(t *testing.T) {
	tests := []struct {
		name         string
		average      float64
		totalReviews int
		want         string
	}{
		{
			name:         "Unreviewed shop shows New, not 0.0",
			average:      0,
			totalReviews: 0,
			want:         "New",
		},
		{
			name:         "Reviewed shop shows one decimal",
			average:      4.7,
			totalReviews: 3,
			want:         "4.7",
		},
		{
			name:         "Whole number keeps decimal place",
			average:      5,
			totalReviews: 1,
			want:         "5.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RatingLabel(tt.average, tt.totalReviews))
		})
	}
}
