// Package propr computes the PROMIS-Preference (PROPr) health-utility score
// from seven PROMIS domain scores.
//
// Scores are obtained either from latent trait values (theta, mean 0, sd 1)
// or from T-scores (mean 50, sd 10). Each domain is mapped through a published
// piecewise-linear disutility model and the seven disutilities are combined
// with a multiplicative multi-attribute utility function (Dewitt et al. 2018).
//
// All functions are pure and safe for concurrent use.
package propr

import (
	"github.com/opensource-health/propr/internal/domain"
	"github.com/opensource-health/propr/internal/rescale"
	"github.com/opensource-health/propr/internal/scoring"
)

// Re-exported model types.
type (
	Domain             = domain.Domain
	Traits             = domain.Traits
	StandardizedScores = domain.StandardizedScores
	CognitionSource    = domain.CognitionSource
	AnxietyCrosswalk   = domain.AnxietyCrosswalk
	DirectCognition    = domain.DirectCognition
	Values             = domain.Values
	Utilities          = domain.Utilities
	Disutilities       = domain.Disutilities
	Contribution       = domain.Contribution
	Result             = domain.Result
	Assessment         = domain.Assessment
	Config             = domain.Config
	RoundingMode       = domain.RoundingMode
	MissingInputError  = domain.MissingInputError
	Processor          = scoring.Processor
	ProcessorOption    = scoring.Option
)

// Domains in canonical output order.
const (
	Cognition  = domain.Cognition
	Depression = domain.Depression
	Fatigue    = domain.Fatigue
	Pain       = domain.Pain
	Physical   = domain.Physical
	Sleep      = domain.Sleep
	Social     = domain.Social
)

// Rounding modes.
const (
	RoundHalfEven         = domain.RoundHalfEven
	RoundHalfAwayFromZero = domain.RoundHalfAwayFromZero
)

// ErrMissingInput matches every MissingInputError.
var ErrMissingInput = domain.ErrMissingInput

// Processor options.
var (
	WithLogger     = scoring.WithLogger
	WithTracer     = scoring.WithTracer
	WithRegisterer = scoring.WithRegisterer
)

// ScoreFromTraits returns the PROPr score and the per-domain utilities
// (cognition, depression, fatigue, pain, physical, sleep, social) for seven
// latent trait values.
func ScoreFromTraits(dep, fat, pain, phys, slp, sr, cog float64) (float64, Utilities) {
	res := Score(Traits{
		Depression: dep,
		Fatigue:    fat,
		Pain:       pain,
		Physical:   phys,
		Sleep:      slp,
		Social:     sr,
		Cognition:  cog,
	})
	return res.Score, res.Utilities
}

// ScoreFromStandardizedScores returns the PROPr score and per-domain utilities
// for six T-scores plus a cognition source. It fails with a
// *MissingInputError when source is nil.
func ScoreFromStandardizedScores(dep, fat, pain, phys, slp, sr float64, source CognitionSource) (float64, Utilities, error) {
	res, err := ScoreStandardized(StandardizedScores{
		Depression: dep,
		Fatigue:    fat,
		Pain:       pain,
		Physical:   phys,
		Sleep:      slp,
		Social:     sr,
	}, source)
	if err != nil {
		return 0, Utilities{}, err
	}
	return res.Score, res.Utilities, nil
}

// Score scores latent traits, returning the full result.
func Score(traits Traits) Result {
	return scoring.FromTraits(traits, domain.RoundHalfEven)
}

// ScoreStandardized scores T-scores, returning the full result.
func ScoreStandardized(scores StandardizedScores, source CognitionSource) (Result, error) {
	return scoring.FromStandardizedScores(scores, source, domain.RoundHalfEven)
}

// Anxiety derives cognition from an anxiety T-score and the global
// physical-item summary score.
func Anxiety(anxiety, physicalSummary float64) CognitionSource {
	return domain.AnxietyCrosswalk{Anxiety: anxiety, PhysicalSummary: physicalSummary}
}

// CognitionScore supplies a cognition T-score directly.
func CognitionScore(cognition float64) CognitionSource {
	return domain.DirectCognition{Cognition: cognition}
}

// ResolveSource builds a CognitionSource from optional scores. Anxiety wins
// when both anxiety and cognition are given and then requires the physical
// summary score.
func ResolveSource(anxiety, cognition, physicalSummary *float64) (CognitionSource, error) {
	return rescale.ResolveSource(anxiety, cognition, physicalSummary)
}

// DefaultConfig returns the default processor configuration.
func DefaultConfig() *Config {
	return domain.DefaultConfig()
}

// NewProcessor creates an instrumented scoring processor.
func NewProcessor(cfg *Config, opts ...ProcessorOption) *Processor {
	return scoring.NewProcessor(cfg, opts...)
}
