// Package rescale converts PROMIS T-scores to the latent trait scale and
// resolves the cognition trait.
package rescale

import (
	"github.com/opensource-health/propr/internal/domain"
)

// Theta converts a T-score (mean 50, sd 10) to a latent trait (mean 0, sd 1).
func Theta(t float64) float64 {
	return (t - 50) / 10
}

// Crosswalk regression coefficients for cognition from anxiety.
const (
	cogIntercept       = 0.009
	cogDepression      = -0.037
	cogPhysical        = 0.118
	cogSleep           = -0.223
	cogSocial          = 0.051
	cogAnxiety         = -0.168
	cogPhysicalSummary = -0.006
)

// CognitionFromAnxiety estimates the cognition trait from other traits, the
// anxiety trait, and the global physical-item summary score. Terms are
// summed left to right in the published order.
func CognitionFromAnxiety(dep, phys, slp, sr, ax, scorePI float64) float64 {
	theta := cogIntercept
	theta += float64(cogDepression * dep)
	theta += float64(cogPhysical * phys)
	theta += float64(cogSleep * slp)
	theta += float64(cogSocial * sr)
	theta += float64(cogAnxiety * ax)
	theta += float64(cogPhysicalSummary * scorePI)
	return theta
}

// Traits converts standardized scores to latent traits. The source decides
// how cognition is obtained; a nil source is a MissingInputError.
func Traits(scores domain.StandardizedScores, source domain.CognitionSource) (domain.Traits, error) {
	traits := domain.Traits{
		Depression: Theta(scores.Depression),
		Fatigue:    Theta(scores.Fatigue),
		Pain:       Theta(scores.Pain),
		Physical:   Theta(scores.Physical),
		Sleep:      Theta(scores.Sleep),
		Social:     Theta(scores.Social),
	}

	switch src := source.(type) {
	case domain.AnxietyCrosswalk:
		traits.Cognition = CognitionFromAnxiety(
			traits.Depression,
			traits.Physical,
			traits.Sleep,
			traits.Social,
			Theta(src.Anxiety),
			src.PhysicalSummary,
		)
	case *domain.AnxietyCrosswalk:
		if src == nil {
			return domain.Traits{}, missingSource()
		}
		return Traits(scores, *src)
	case domain.DirectCognition:
		traits.Cognition = Theta(src.Cognition)
	case *domain.DirectCognition:
		if src == nil {
			return domain.Traits{}, missingSource()
		}
		return Traits(scores, *src)
	default:
		return domain.Traits{}, missingSource()
	}

	return traits, nil
}

// ResolveSource maps optional anxiety, cognition and physical-summary scores
// onto a CognitionSource. Anxiety takes precedence when both are present and
// then requires the physical summary score.
func ResolveSource(anxiety, cognition, physicalSummary *float64) (domain.CognitionSource, error) {
	switch {
	case anxiety != nil:
		if physicalSummary == nil {
			return nil, &domain.MissingInputError{
				Field:  "score_pi",
				Reason: "anxiety crosswalk requires the physical summary score",
			}
		}
		return domain.AnxietyCrosswalk{Anxiety: *anxiety, PhysicalSummary: *physicalSummary}, nil
	case cognition != nil:
		return domain.DirectCognition{Cognition: *cognition}, nil
	default:
		return nil, missingSource()
	}
}

func missingSource() error {
	return &domain.MissingInputError{
		Field:  "anxiety|cognition",
		Reason: "either an anxiety or a cognition T-score is required",
	}
}
