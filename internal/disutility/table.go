// Package disutility maps latent trait scores to per-domain disutilities
// using the published PROPr piecewise-linear models.
package disutility

import (
	"errors"
	"fmt"

	"github.com/opensource-health/propr/internal/domain"
)

// ErrInvalidTable is returned by Validate for malformed tables.
var ErrInvalidTable = errors.New("invalid disutility table")

// Segment is one linear piece: disutility = Intercept + theta*Slope.
type Segment struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// Table is an ordered breakpoint table for one domain.
//
// Breakpoints t[0] < t[1] < ... < t[n] delimit n segments; segment k covers
// [t[k], t[k+1]). Values below t[0] take Below and values at or above t[n]
// take Above.
type Table struct {
	Domain      domain.Domain `json:"domain"`
	Breakpoints []float64     `json:"breakpoints"`
	Segments    []Segment     `json:"segments"`
	Below       float64       `json:"below"`
	Above       float64       `json:"above"`
}

// Evaluate returns the disutility for theta. It is total: every real input,
// including NaN, yields exactly one value.
func (t Table) Evaluate(theta float64) float64 {
	k := t.Segment(theta)
	switch {
	case k < 0:
		return t.Below
	case k >= len(t.Segments):
		return t.Above
	}
	seg := t.Segments[k]
	// The conversion keeps the product rounded on its own so the compiler
	// cannot fuse it into a multiply-add.
	return seg.Intercept + float64(theta*seg.Slope)
}

// Segment returns the index of the segment containing theta, or -1 below the
// first breakpoint and len(Segments) at or above the last one.
func (t Table) Segment(theta float64) int {
	n := len(t.Breakpoints)
	if n == 0 {
		return -1
	}
	if theta >= t.Breakpoints[n-1] {
		return len(t.Segments)
	}
	// Match: lower <= theta < upper
	for k := range t.Segments {
		if theta >= t.Breakpoints[k] && theta < t.Breakpoints[k+1] {
			return k
		}
	}
	return -1
}

// Validate checks that breakpoints are strictly increasing and that there is
// exactly one segment between each adjacent pair.
func (t Table) Validate() error {
	if len(t.Breakpoints) < 2 {
		return fmt.Errorf("%w: %s needs at least two breakpoints", ErrInvalidTable, t.Domain)
	}
	if len(t.Segments) != len(t.Breakpoints)-1 {
		return fmt.Errorf("%w: %s has %d breakpoints but %d segments",
			ErrInvalidTable, t.Domain, len(t.Breakpoints), len(t.Segments))
	}
	for k := 1; k < len(t.Breakpoints); k++ {
		if !(t.Breakpoints[k] > t.Breakpoints[k-1]) {
			return fmt.Errorf("%w: %s breakpoint %d (%v) does not exceed %v",
				ErrInvalidTable, t.Domain, k, t.Breakpoints[k], t.Breakpoints[k-1])
		}
	}
	return nil
}

// Evaluate returns the published-model disutility for a domain.
func Evaluate(d domain.Domain, theta float64) float64 {
	return tables[d].Evaluate(theta)
}

// All evaluates every domain, returning disutilities in canonical order.
func All(traits domain.Traits) domain.Disutilities {
	var out domain.Disutilities
	for _, d := range domain.AllDomains() {
		out[d] = Evaluate(d, traits.Get(d))
	}
	return out
}

// For returns a copy of the published table for a domain.
func For(d domain.Domain) Table {
	t := tables[d]
	t.Breakpoints = append([]float64(nil), t.Breakpoints...)
	t.Segments = append([]Segment(nil), t.Segments...)
	return t
}
