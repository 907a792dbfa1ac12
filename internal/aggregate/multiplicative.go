// Package aggregate combines per-domain disutilities with the PROPr
// multiplicative multi-attribute utility function.
package aggregate

import "github.com/opensource-health/propr/internal/domain"

// Model holds the multiplicative aggregation constants.
type Model struct {
	// C is the multiplicative scaling constant.
	C float64 `json:"c"`

	// ToDead rescales so that 0 anchors the "dead" health state.
	ToDead float64 `json:"toDead"`

	// Weights are the single-attribute constants c_d in canonical order.
	Weights domain.Values `json:"weights"`
}

// Published returns the published PROPr aggregation constants.
func Published() Model {
	return Model{
		C:      -0.9991828,
		ToDead: 1.021915,
		Weights: domain.Values{
			domain.Cognition:  0.6350450,
			domain.Depression: 0.6661641,
			domain.Fatigue:    0.6386135,
			domain.Pain:       0.6529680,
			domain.Physical:   0.6883584,
			domain.Sleep:      0.5629657,
			domain.Social:     0.6112686,
		},
	}
}

// factor computes 1 + C*c_d*dis_d. Each product is converted explicitly so
// no multiply-add fusion changes the rounding.
func (m Model) factor(d domain.Domain, dis float64) float64 {
	return 1 + float64(float64(m.C*m.Weights[d])*dis)
}

// MultiAttribute returns (1/C) * (prod(1 + C*c_d*dis_d) - 1). Disutilities
// are not clamped; out-of-range segment values propagate.
func (m Model) MultiAttribute(dis domain.Disutilities) float64 {
	product := 1.0
	for _, d := range domain.AllDomains() {
		product *= m.factor(d, dis[d])
	}
	return (1 / m.C) * (product - 1)
}

// Utility returns the unrounded composite utility 1 - ToDead*MultiAttribute.
func (m Model) Utility(dis domain.Disutilities) float64 {
	return 1 - float64(m.ToDead*m.MultiAttribute(dis))
}

// Contributions returns the per-domain factors of the product.
func (m Model) Contributions(dis domain.Disutilities) []domain.Contribution {
	out := make([]domain.Contribution, 0, domain.NumDomains)
	for _, d := range domain.AllDomains() {
		out = append(out, domain.Contribution{
			Domain:     d,
			Weight:     m.Weights[d],
			Disutility: dis[d],
			Factor:     m.factor(d, dis[d]),
		})
	}
	return out
}
