// Package rating computes derived rating data for a movie: the on-demand
// score aggregate and the reply tree used by detail views.
package rating

import (
	"github.com/shopspring/decimal"

	"github.com/bekbolotov/movie-catalog-api/internal/domain"
)

// Aggregate returns the arithmetic mean of all scores rounded to two
// decimals, and the number of rating rows. Replies count the same as
// top-level ratings. Zero ratings yield {0, 0}, never NaN.
func Aggregate(ratings []*domain.Rating) domain.RatingSummary {
	if len(ratings) == 0 {
		return domain.RatingSummary{}
	}

	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r.Score)))
	}

	avg, _ := sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(2).Float64()

	return domain.RatingSummary{
		Average: avg,
		Count:   len(ratings),
	}
}
