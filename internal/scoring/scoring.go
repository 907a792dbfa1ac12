// Package scoring computes PROPr health-utility scores.
package scoring

import (
	"fmt"
	"math"
	"strconv"

	"github.com/opensource-health/propr/internal/aggregate"
	"github.com/opensource-health/propr/internal/disutility"
	"github.com/opensource-health/propr/internal/domain"
	"github.com/opensource-health/propr/internal/rescale"
)

var model = aggregate.Published()

// FromTraits scores seven latent traits.
func FromTraits(traits domain.Traits, mode domain.RoundingMode) domain.Result {
	dis := disutility.All(traits)
	res := domain.Result{
		Score:                    Round(model.Utility(dis), mode),
		Disutilities:             dis,
		MultiAttributeDisutility: model.MultiAttribute(dis),
	}
	for _, d := range domain.AllDomains() {
		res.Utilities[d] = RoundUtility(1-dis[d], mode)
	}
	return res
}

// FromStandardizedScores rescales T-scores to traits, resolves cognition from
// source and scores the result.
func FromStandardizedScores(scores domain.StandardizedScores, source domain.CognitionSource, mode domain.RoundingMode) (domain.Result, error) {
	traits, err := rescale.Traits(scores, source)
	if err != nil {
		return domain.Result{}, fmt.Errorf("rescale standardized scores: %w", err)
	}
	return FromTraits(traits, mode), nil
}

// Round rounds x to three decimals. An unknown mode rounds half to even.
func Round(x float64, mode domain.RoundingMode) float64 {
	scaled := x * 1000
	switch mode {
	case domain.RoundHalfAwayFromZero:
		return math.Round(scaled) / 1000
	default:
		return math.RoundToEven(scaled) / 1000
	}
}

// RoundUtility rounds a per-domain utility to three decimals. Half-even
// rounding works on the exact decimal value of x rather than x*1000, so
// values just off a tie round the way their decimal expansion says.
func RoundUtility(x float64, mode domain.RoundingMode) float64 {
	if mode == domain.RoundHalfAwayFromZero {
		return Round(x, mode)
	}
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 3, 64), 64)
	if err != nil {
		return Round(x, mode)
	}
	return v
}
