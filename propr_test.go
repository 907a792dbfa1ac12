package propr_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/opensource-health/propr"
)

func TestScoreFromTraits(t *testing.T) {
	score, utilities := propr.ScoreFromTraits(0.5, 1.2, -0.3, -1.0, 0.9, -0.7, 0.25)

	if score != 0.263 {
		t.Errorf("expected score 0.263, got %v", score)
	}
	want := propr.Utilities{0.863, 0.809, 0.647, 0.958, 0.616, 0.615, 0.684}
	if utilities != want {
		t.Errorf("expected utilities %v, got %v", want, utilities)
	}
	if utilities.Get(propr.Pain) != 0.958 {
		t.Errorf("expected pain utility 0.958, got %v", utilities.Get(propr.Pain))
	}
}

func TestScoreFromStandardizedScores(t *testing.T) {
	t.Run("DirectCognitionMatchesTraits", func(t *testing.T) {
		score, utilities, err := propr.ScoreFromStandardizedScores(55, 60, 45, 40, 58, 43, propr.CognitionScore(47))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantScore, wantUtilities := propr.ScoreFromTraits(0.5, 1, -0.5, -1, 0.8, -0.7, -0.3)
		if score != wantScore || utilities != wantUtilities {
			t.Errorf("expected (%v, %v), got (%v, %v)", wantScore, wantUtilities, score, utilities)
		}
	})

	t.Run("Anxiety", func(t *testing.T) {
		score, _, err := propr.ScoreFromStandardizedScores(55, 60, 45, 40, 58, 43, propr.Anxiety(62, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if score != 0.253 {
			t.Errorf("expected score 0.253, got %v", score)
		}
	})

	t.Run("MissingInput", func(t *testing.T) {
		_, _, err := propr.ScoreFromStandardizedScores(55, 60, 45, 40, 58, 43, nil)
		if !errors.Is(err, propr.ErrMissingInput) {
			t.Fatalf("expected ErrMissingInput, got %v", err)
		}
		var missing *propr.MissingInputError
		if !errors.As(err, &missing) {
			t.Errorf("expected *MissingInputError, got %T", err)
		}
	})
}

func TestResolveSource(t *testing.T) {
	ax, pi := 62.0, 3.0

	src, err := propr.ResolveSource(&ax, nil, &pi)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := src.(propr.AnxietyCrosswalk); !ok {
		t.Errorf("expected AnxietyCrosswalk, got %T", src)
	}

	if _, err := propr.ResolveSource(nil, nil, nil); !errors.Is(err, propr.ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
}

func TestProcessor(t *testing.T) {
	var buf bytes.Buffer
	cfg := propr.DefaultConfig()
	proc := propr.NewProcessor(cfg, propr.WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))))

	a, err := proc.ScoreStandardized(context.Background(), propr.StandardizedScores{
		Depression: 55, Fatigue: 60, Pain: 45, Physical: 40, Sleep: 58, Social: 43,
	}, propr.CognitionScore(47))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Result.Score != 0.261 {
		t.Errorf("expected score 0.261, got %v", a.Result.Score)
	}
}

func ExampleScoreFromTraits() {
	score, utilities := propr.ScoreFromTraits(0, 0, 0, 0, 0, 0, 0)
	fmt.Println(score)
	fmt.Println(utilities.Get(propr.Cognition), utilities.Get(propr.Social))
	// Output:
	// 0.518
	// 0.858 0.832
}

func ExampleScoreFromStandardizedScores() {
	score, _, err := propr.ScoreFromStandardizedScores(55, 60, 45, 40, 58, 43, propr.Anxiety(62, 3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(score)

	_, _, err = propr.ScoreFromStandardizedScores(55, 60, 45, 40, 58, 43, nil)
	fmt.Println(err)
	// Output:
	// 0.253
	// rescale standardized scores: missing input anxiety|cognition: either an anxiety or a cognition T-score is required
}
