package domain

// Domain identifies one of the seven PROMIS health domains scored by PROPr.
type Domain int

// Domains in canonical output order.
const (
	Cognition Domain = iota
	Depression
	Fatigue
	Pain
	Physical
	Sleep
	Social
)

// NumDomains is the number of health domains in the model.
const NumDomains = 7

var domainNames = [NumDomains]string{
	"cognition",
	"depression",
	"fatigue",
	"pain",
	"physical",
	"sleep",
	"social",
}

// AllDomains returns the domains in canonical output order.
func AllDomains() []Domain {
	return []Domain{Cognition, Depression, Fatigue, Pain, Physical, Sleep, Social}
}

// String returns the lower-case domain name.
func (d Domain) String() string {
	if d < 0 || int(d) >= NumDomains {
		return "unknown"
	}
	return domainNames[d]
}

// Valid reports whether d is one of the seven model domains.
func (d Domain) Valid() bool {
	return d >= 0 && int(d) < NumDomains
}

// Traits holds latent trait scores (theta, mean 0, sd 1) for every domain.
type Traits struct {
	Depression float64 `json:"depression"`
	Fatigue    float64 `json:"fatigue"`
	Pain       float64 `json:"pain"`
	Physical   float64 `json:"physical"`
	Sleep      float64 `json:"sleep"`
	Social     float64 `json:"social"`
	Cognition  float64 `json:"cognition"`
}

// Get returns the trait for a domain. Unknown domains yield 0.
func (t Traits) Get(d Domain) float64 {
	switch d {
	case Cognition:
		return t.Cognition
	case Depression:
		return t.Depression
	case Fatigue:
		return t.Fatigue
	case Pain:
		return t.Pain
	case Physical:
		return t.Physical
	case Sleep:
		return t.Sleep
	case Social:
		return t.Social
	}
	return 0
}

// StandardizedScores holds T-scores (mean 50, sd 10) for the six domains
// that are always supplied directly. Cognition comes from a CognitionSource.
type StandardizedScores struct {
	Depression float64 `json:"depression"`
	Fatigue    float64 `json:"fatigue"`
	Pain       float64 `json:"pain"`
	Physical   float64 `json:"physical"`
	Sleep      float64 `json:"sleep"`
	Social     float64 `json:"social"`
}
