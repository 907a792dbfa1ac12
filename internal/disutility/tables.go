package disutility

import (
	"fmt"

	"github.com/opensource-health/propr/internal/domain"
)

func init() {
	for i, t := range tables {
		if t.Domain != domain.Domain(i) {
			panic(fmt.Sprintf("disutility: table %d is labelled %s", i, t.Domain))
		}
		if err := t.Validate(); err != nil {
			panic(err)
		}
	}
}

// Published PROPr single-attribute disutility models (Dewitt et al. 2018,
// doi:10.1177/0272989X18776637). Values must stay bit-exact.
//
// Cognition, physical function and social roles improve with theta, so they
// saturate at 1 below the first breakpoint and 0 at the top. The remaining
// domains measure symptoms and saturate the other way.
var tables = [domain.NumDomains]Table{
	domain.Cognition: {
		Domain:      domain.Cognition,
		Breakpoints: []float64{-2.052, -1.565, -1.239, -0.902, -0.649, -0.367, -0.002, 0.52, 1.124},
		Segments: []Segment{
			{Intercept: -1.0617, Slope: -1.0047},
			{Intercept: 0.2375, Slope: -0.1745},
			{Intercept: -0.0694, Slope: -0.4223},
			{Intercept: 0.1357, Slope: -0.1949},
			{Intercept: 0.192, Slope: -0.1082},
			{Intercept: 0.1411, Slope: -0.2468},
			{Intercept: 0.1416, Slope: -0.0176},
			{Intercept: 0.2464, Slope: -0.2192},
		},
		Below: 1,
		Above: 0,
	},
	domain.Depression: {
		Domain:      domain.Depression,
		Breakpoints: []float64{-1.082, -0.264, 0.151, 0.596, 0.913, 1.388, 1.742, 2.245, 2.703},
		Segments: []Segment{
			{Intercept: 0.1701, Slope: 0.1572},
			{Intercept: 0.1286, Slope: 0},
			{Intercept: 0.1015, Slope: 0.1793},
			{Intercept: 0.1001, Slope: 0.1817},
			{Intercept: -0.1092, Slope: 0.4109},
			{Intercept: 0.1993, Slope: 0.1887},
			{Intercept: 0.1595, Slope: 0.2115},
			{Intercept: -1.1577, Slope: 0.7983},
		},
		Below: 0,
		Above: 1,
	},
	domain.Fatigue: {
		Domain:      domain.Fatigue,
		Breakpoints: []float64{-1.648, -0.818, -0.094, 0.303, 0.87, 1.124, 1.688, 2.053, 2.423},
		Segments: []Segment{
			{Intercept: 0.1898, Slope: 0.1152},
			{Intercept: 0.1837, Slope: 0.1077},
			{Intercept: 0.1848, Slope: 0.1189},
			{Intercept: 0.1821, Slope: 0.1277},
			{Intercept: 0.1, Slope: 0.222},
			{Intercept: 0.2938, Slope: 0.0496},
			{Intercept: -0.1681, Slope: 0.3233},
			{Intercept: -2.3031, Slope: 1.3632},
		},
		Below: 0,
		Above: 1,
	},
	domain.Pain: {
		Domain:      domain.Pain,
		Breakpoints: []float64{-0.773, 0.1, 0.462, 0.827, 1.072, 1.407, 1.724, 2.169, 2.725},
		Segments: []Segment{
			{Intercept: 0.0689, Slope: 0.0891},
			{Intercept: 0.0606, Slope: 0.1721},
			{Intercept: 0.0929, Slope: 0.1022},
			{Intercept: -0.1733, Slope: 0.4241},
			{Intercept: -0.1277, Slope: 0.3815},
			{Intercept: -0.1089, Slope: 0.3681},
			{Intercept: 0.3243, Slope: 0.1169},
			{Intercept: -1.0692, Slope: 0.7594},
		},
		Below: 0,
		Above: 1,
	},
	domain.Physical: {
		Domain:      domain.Physical,
		Breakpoints: []float64{-2.575, -2.174, -1.784, -1.377, -0.787, -0.443, -0.211, 0.16, 0.966},
		Segments: []Segment{
			{Intercept: -1.7709, Slope: -1.0761},
			{Intercept: 0.1867, Slope: -0.1756},
			{Intercept: 0.1853, Slope: -0.1764},
			{Intercept: 0.2683, Slope: -0.1161},
			{Intercept: 0.1456, Slope: -0.2721},
			{Intercept: 0.0853, Slope: -0.4082},
			{Intercept: 0.1356, Slope: -0.1695},
			{Intercept: 0.13, Slope: -0.1346},
		},
		Below: 1,
		Above: 0,
	},
	// Sleep disturbance has one fewer segment than the other domains.
	domain.Sleep: {
		Domain:      domain.Sleep,
		Breakpoints: []float64{-1.535, -0.775, -0.459, 0.093, 0.335, 0.82, 1.659, 1.934},
		Segments: []Segment{
			{Intercept: 0.1905, Slope: 0.1241},
			{Intercept: 0.0943, Slope: 0},
			{Intercept: 0.1309, Slope: 0.0797},
			{Intercept: 0.1062, Slope: 0.3455},
			{Intercept: 0.1164, Slope: 0.3148},
			{Intercept: 0.2731, Slope: 0.1238},
			{Intercept: -2.6676, Slope: 1.8964},
		},
		Below: 0,
		Above: 1,
	},
	domain.Social: {
		Domain:      domain.Social,
		Breakpoints: []float64{-2.088, -1.634, -1.293, -0.955, -0.618, -0.276, 0.083, 0.494, 1.221},
		Segments: []Segment{
			{Intercept: -1.3285, Slope: -1.1152},
			{Intercept: 0.0241, Slope: -0.2874},
			{Intercept: 0.2209, Slope: -0.1352},
			{Intercept: 0.2239, Slope: -0.132},
			{Intercept: 0.0576, Slope: -0.4012},
			{Intercept: 0.1683, Slope: 0},
			{Intercept: 0.1728, Slope: -0.054},
			{Intercept: 0.2454, Slope: -0.201},
		},
		Below: 1,
		Above: 0,
	},
}
