package model

import (
	"math"
	"strconv"
)

// AggregateRating computes a shop's displayed rating from its review ratings.
// The average is the arithmetic mean rounded half-up to one decimal place;
// an empty input yields (0, 0). Callers must recompute from the full rating
// set rather than adjusting a previously stored average, so two reviews
// arriving concurrently are both reflected once their transactions commit.
func AggregateRating(ratings []int) (average float64, count int) {
	count = len(ratings)
	if count == 0 {
		return 0, 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	mean := float64(sum) / float64(count)
	return roundHalfUp1(mean), count
}

// RatingLabel returns the text shown next to a shop: "New" for shops without
// reviews, otherwise the one-decimal average (e.g. "4.3").
func RatingLabel(average float64, totalReviews int) string {
	if totalReviews == 0 {
		return "New"
	}
	return strconv.FormatFloat(roundHalfUp1(average), 'f', 1, 64)
}

// roundHalfUp1 rounds to one decimal place, ties away from zero (4.25 -> 4.3)
func roundHalfUp1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
