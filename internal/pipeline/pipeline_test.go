package pipeline

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vigyantra/docscan/internal/model"
)

// recordingStep appends its name to a shared log when executed.
type recordingStep struct {
	name string
	log  *[]string
	err  error
}

func (s *recordingStep) Name() string { return s.name }

func (s *recordingStep) Do(_ context.Context, _ *model.ScanResult) error {
	*s.log = append(*s.log, s.name)
	return s.err
}

// TestPipelineExecutesInOrder tests sequential step execution.
func TestPipelineExecutesInOrder(t *testing.T) {
	t.Parallel()

	var log []string
	p := New()
	p.AddSteps(
		&recordingStep{name: "first", log: &log},
		&recordingStep{name: "second", log: &log},
		&recordingStep{name: "third", log: &log},
	)

	result := model.NewScanResult("a.pdf", "application/pdf", []byte("x"))
	if err := p.Execute(context.Background(), result); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if want := []string{"first", "second", "third"}; !reflect.DeepEqual(log, want) {
		t.Errorf("execution order = %v, want %v", log, want)
	}
	if got := p.StepNames(); !reflect.DeepEqual(got, []string{"first", "second", "third"}) {
		t.Errorf("StepNames = %v", got)
	}
	if p.StepCount() != 3 {
		t.Errorf("StepCount = %d, want 3", p.StepCount())
	}
}

// TestPipelineStopsOnError tests that a failing step halts execution by
// default.
func TestPipelineStopsOnError(t *testing.T) {
	t.Parallel()

	var log []string
	stepErr := errors.New("boom")

	p := New()
	p.AddSteps(
		&recordingStep{name: "first", log: &log},
		&recordingStep{name: "failing", log: &log, err: stepErr},
		&recordingStep{name: "never", log: &log},
	)

	result := model.NewScanResult("a.pdf", "application/pdf", []byte("x"))
	err := p.Execute(context.Background(), result)
	if !errors.Is(err, stepErr) {
		t.Fatalf("Execute error = %v, want %v", err, stepErr)
	}

	if want := []string{"first", "failing"}; !reflect.DeepEqual(log, want) {
		t.Errorf("execution order = %v, want %v", log, want)
	}
	if len(result.ScanErrors) != 1 {
		t.Errorf("ScanErrors = %v, want 1 entry", result.ScanErrors)
	}
}

// TestPipelineContinueOnError tests the continue-on-error mode.
func TestPipelineContinueOnError(t *testing.T) {
	t.Parallel()

	var log []string
	p := New(WithContinueOnError(true))
	p.AddSteps(
		&recordingStep{name: "failing", log: &log, err: errors.New("boom")},
		&recordingStep{name: "still runs", log: &log},
	)

	result := model.NewScanResult("a.pdf", "application/pdf", []byte("x"))
	if err := p.Execute(context.Background(), result); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if want := []string{"failing", "still runs"}; !reflect.DeepEqual(log, want) {
		t.Errorf("execution order = %v, want %v", log, want)
	}
}

// TestPipelineCanceledContext tests cancellation before the first step.
func TestPipelineCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var log []string
	p := New()
	p.AddStep(&recordingStep{name: "never", log: &log})

	result := model.NewScanResult("a.pdf", "application/pdf", []byte("x"))
	if err := p.Execute(ctx, result); !errors.Is(err, context.Canceled) {
		t.Fatalf("Execute error = %v, want context.Canceled", err)
	}
	if len(log) != 0 {
		t.Errorf("steps ran after cancellation: %v", log)
	}
}
