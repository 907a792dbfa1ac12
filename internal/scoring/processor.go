package scoring

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/opensource-health/propr/internal/domain"
	"github.com/opensource-health/propr/internal/metrics"
	"github.com/opensource-health/propr/internal/observability"
	"github.com/opensource-health/propr/internal/rescale"
)

// EngineVersion identifies the scoring model in assessment metadata.
const EngineVersion = "propr-2018"

// Processor scores assessments with logging, tracing and metrics. It holds no
// mutable state and is safe for concurrent use.
type Processor struct {
	cfg     domain.Config
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics.Metrics
}

// Option customizes a Processor.
type Option func(*Processor)

// WithLogger sets the logger. By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) { p.logger = logger }
}

// WithTracer overrides the tracer built from the tracing config.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Processor) { p.tracer = tracer }
}

// WithRegisterer registers processor metrics with reg. Metrics are only
// collected when cfg.Metrics.Enabled is set.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(p *Processor) {
		if p.cfg.Metrics.Enabled {
			p.metrics = metrics.New(p.cfg.Metrics.Namespace, reg)
		}
	}
}

// NewProcessor creates a processor. A nil cfg uses DefaultConfig.
func NewProcessor(cfg *domain.Config, opts ...Option) *Processor {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	p := &Processor{
		cfg:    *cfg,
		logger: observability.NewLogger(cfg.Logging, io.Discard),
		tracer: observability.NewTracer(cfg.Tracing),
	}
	if p.cfg.Rounding == "" {
		p.cfg.Rounding = domain.RoundHalfEven
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ScoreTraits scores latent traits.
func (p *Processor) ScoreTraits(ctx context.Context, traits domain.Traits) *domain.Assessment {
	start := time.Now()
	ctx, span := p.tracer.Start(ctx, "propr.ScoreTraits",
		trace.WithAttributes(attribute.String("propr.kind", string(domain.KindTraits))),
	)
	defer span.End()

	res := FromTraits(traits, p.cfg.Rounding)
	return p.record(ctx, span, domain.KindTraits, traits, res, start)
}

// ScoreStandardized rescales T-scores and scores them. It fails with a
// *domain.MissingInputError when source is nil.
func (p *Processor) ScoreStandardized(ctx context.Context, scores domain.StandardizedScores, source domain.CognitionSource) (*domain.Assessment, error) {
	start := time.Now()
	kind := sourceKind(source)
	ctx, span := p.tracer.Start(ctx, "propr.ScoreStandardized",
		trace.WithAttributes(attribute.String("propr.kind", string(kind))),
	)
	defer span.End()

	traits, err := rescale.Traits(scores, source)
	if err != nil {
		err = fmt.Errorf("rescale standardized scores: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		outcome := "error"
		if errors.Is(err, domain.ErrMissingInput) {
			outcome = "missing_input"
		}
		p.metrics.IncrementAssessment(string(kind), outcome)
		p.logger.WarnContext(ctx, "standardized scoring rejected",
			"kind", kind,
			"error", err,
		)
		return nil, err
	}

	res := FromTraits(traits, p.cfg.Rounding)
	return p.record(ctx, span, kind, traits, res, start), nil
}

func (p *Processor) record(ctx context.Context, span trace.Span, kind domain.SourceKind, traits domain.Traits, res domain.Result, start time.Time) *domain.Assessment {
	assessment := &domain.Assessment{
		ID:        uuid.New().String(),
		Kind:      kind,
		Traits:    traits,
		Result:    res,
		Timestamp: time.Now().UTC(),

		Contributions: model.Contributions(res.Disutilities),
	}

	elapsed := time.Since(start)
	assessment.Metadata = domain.AssessmentMetadata{
		Rounding:      p.cfg.Rounding,
		TotalMicros:   elapsed.Microseconds(),
		EngineVersion: EngineVersion,
	}
	if sc := span.SpanContext(); sc.HasTraceID() {
		assessment.Metadata.TraceID = sc.TraceID().String()
	}

	span.SetAttributes(
		attribute.String("propr.assessment_id", assessment.ID),
		attribute.Float64("propr.score", res.Score),
	)

	p.metrics.IncrementAssessment(string(kind), "ok")
	p.metrics.ObserveScore(res.Score)
	for _, d := range domain.AllDomains() {
		p.metrics.ObserveDomainUtility(d.String(), res.Utilities[d])
	}
	p.metrics.ObserveLatency(elapsed)

	p.logger.DebugContext(ctx, "assessment scored",
		"assessment_id", assessment.ID,
		"kind", kind,
		"score", res.Score,
		"utilities", res.Utilities.Map(),
	)

	return assessment
}

func sourceKind(source domain.CognitionSource) domain.SourceKind {
	switch src := source.(type) {
	case nil:
		return domain.KindNone
	case *domain.AnxietyCrosswalk:
		if src == nil {
			return domain.KindNone
		}
	case *domain.DirectCognition:
		if src == nil {
			return domain.KindNone
		}
	}
	return source.Kind()
}
