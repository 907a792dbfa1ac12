package domain

// CognitionSource selects how the cognition trait is obtained when scoring
// from standardized scores. It is implemented only by AnxietyCrosswalk and
// DirectCognition.
type CognitionSource interface {
	// Kind names the source for logs and metrics.
	Kind() SourceKind
	isCognitionSource()
}

// SourceKind labels how an assessment's inputs were supplied.
type SourceKind string

const (
	// KindTraits marks an assessment scored directly from latent traits.
	KindTraits SourceKind = "traits"

	// KindAnxiety marks cognition derived from the anxiety crosswalk.
	KindAnxiety SourceKind = "anxiety"

	// KindCognition marks a directly supplied cognition T-score.
	KindCognition SourceKind = "cognition"

	// KindNone marks a standardized request with no cognition source.
	KindNone SourceKind = "none"
)

// AnxietyCrosswalk derives cognition from an anxiety T-score and the
// global physical-item summary score via a fixed regression.
type AnxietyCrosswalk struct {
	Anxiety         float64 `json:"anxiety"`
	PhysicalSummary float64 `json:"physicalSummary"`
}

// Kind implements CognitionSource.
func (AnxietyCrosswalk) Kind() SourceKind { return KindAnxiety }

func (AnxietyCrosswalk) isCognitionSource() {}

// DirectCognition supplies the cognition T-score directly.
type DirectCognition struct {
	Cognition float64 `json:"cognition"`
}

// Kind implements CognitionSource.
func (DirectCognition) Kind() SourceKind { return KindCognition }

func (DirectCognition) isCognitionSource() {}
