package domain

import (
	"time"
)

// Values holds one number per domain in canonical order:
// cognition, depression, fatigue, pain, physical, sleep, social.
type Values [NumDomains]float64

// Get returns the value for a domain.
func (v Values) Get(d Domain) float64 {
	return v[d]
}

// Map returns the values keyed by domain name.
func (v Values) Map() map[string]float64 {
	out := make(map[string]float64, NumDomains)
	for _, d := range AllDomains() {
		out[d.String()] = v[d]
	}
	return out
}

// Utilities are per-domain utilities, 1 - disutility.
type Utilities Values

// Get returns the utility for a domain.
func (u Utilities) Get(d Domain) float64 { return Values(u).Get(d) }

// Map returns the utilities keyed by domain name.
func (u Utilities) Map() map[string]float64 { return Values(u).Map() }

// Disutilities are per-domain disutilities from the single-attribute models.
// They are not clamped and may fall slightly outside [0, 1].
type Disutilities Values

// Get returns the disutility for a domain.
func (d Disutilities) Get(dom Domain) float64 { return Values(d).Get(dom) }

// Map returns the disutilities keyed by domain name.
func (d Disutilities) Map() map[string]float64 { return Values(d).Map() }

// Contribution shows how one domain entered the multiplicative product.
type Contribution struct {
	Domain     Domain  `json:"domain"`
	Weight     float64 `json:"weight"`
	Disutility float64 `json:"disutility"`
	Factor     float64 `json:"factor"` // 1 + C*weight*disutility
}

// Result is the output of one PROPr scoring.
type Result struct {
	// Score is the composite PROPr utility rounded to three decimals.
	Score float64 `json:"score"`

	// Utilities are the per-domain utilities (1 - disutility), rounded.
	Utilities Utilities `json:"utilities"`

	// Disutilities are the unrounded per-domain disutilities.
	Disutilities Disutilities `json:"disutilities"`

	// MultiAttributeDisutility is the unrounded combined disutility.
	MultiAttributeDisutility float64 `json:"multiAttributeDisutility"`
}

// Assessment is a scoring run recorded by the processor.
type Assessment struct {
	ID        string     `json:"id"`
	Kind      SourceKind `json:"kind"`
	Traits    Traits     `json:"traits"`
	Result    Result     `json:"result"`
	Timestamp time.Time  `json:"timestamp"`

	// Contributions break the composite down by domain.
	Contributions []Contribution `json:"contributions"`

	Metadata AssessmentMetadata `json:"metadata"`
}

// AssessmentMetadata contains processing information.
type AssessmentMetadata struct {
	TraceID       string       `json:"traceId,omitempty"`
	Rounding      RoundingMode `json:"rounding"`
	TotalMicros   int64        `json:"totalMicros"`
	EngineVersion string       `json:"engineVersion"`
}
