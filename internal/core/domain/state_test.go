package domain_test

import (
	"errors"
	"testing"

	"github.com/airgapci/airlock/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestTransition_ForwardPath(t *testing.T) {
	order := []domain.PipelineState{
		domain.StateIdle,
		domain.StateProbeDone,
		domain.StateEnvLoaded,
		domain.StateBuilt,
		domain.StateSmokeTested,
	}

	state := order[0]
	for _, next := range order[1:] {
		var err error
		state, err = domain.Transition(state, next)
		if err != nil {
			t.Fatalf("transition to %s: unexpected error: %v", next, err)
		}
	}

	if !state.Terminal() {
		t.Errorf("expected %s to be terminal", state)
	}
}

func TestTransition_RejectsBackward(t *testing.T) {
	_, err := domain.Transition(domain.StateBuilt, domain.StateProbeDone)
	if err == nil {
		t.Fatal("expected error for backward transition, got nil")
	}

	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition in chain, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}

	meta := zErr.Metadata()
	if from, ok := meta["from"].(string); !ok || from != "built" {
		t.Errorf("expected metadata from=built, got %v", meta["from"])
	}
	if to, ok := meta["to"].(string); !ok || to != "probe-done" {
		t.Errorf("expected metadata to=probe-done, got %v", meta["to"])
	}
}

func TestTransition_RejectsSkippingSteps(t *testing.T) {
	if _, err := domain.Transition(domain.StateIdle, domain.StateBuilt); err == nil {
		t.Error("expected error when skipping from idle to built, got nil")
	}
	if _, err := domain.Transition(domain.StateProbeDone, domain.StateSmokeTested); err == nil {
		t.Error("expected error when skipping from probe-done to smoke-tested, got nil")
	}
}

func TestTransition_FailReachableFromAnyNonTerminal(t *testing.T) {
	for _, state := range []domain.PipelineState{
		domain.StateIdle,
		domain.StateProbeDone,
		domain.StateEnvLoaded,
		domain.StateBuilt,
	} {
		next, err := domain.Transition(state, domain.StateFailed)
		if err != nil {
			t.Errorf("fail from %s: unexpected error: %v", state, err)
		}
		if next != domain.StateFailed {
			t.Errorf("fail from %s: got state %s", state, next)
		}
	}
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, state := range []domain.PipelineState{domain.StateSmokeTested, domain.StateFailed} {
		if _, err := domain.Transition(state, domain.StateFailed); err == nil {
			t.Errorf("expected error advancing from terminal state %s, got nil", state)
		}
	}
}
