package domain_test

import (
	"slices"
	"testing"

	"github.com/airgapci/airlock/internal/core/domain"
)

func TestOverlay_SetPreservesFileOrder(t *testing.T) {
	o := domain.NewOverlay("deps.env")
	o.Set("GOMODCACHE", "/tmp/cache/gomod")
	o.Set("GOPROXY", "off")
	o.Set("GOFLAGS", "-mod=mod")

	want := []string{
		"GOMODCACHE=/tmp/cache/gomod",
		"GOPROXY=off",
		"GOFLAGS=-mod=mod",
	}
	if got := o.Environ(); !slices.Equal(got, want) {
		t.Errorf("unexpected environ order:\n got %v\nwant %v", got, want)
	}
}

func TestOverlay_LastAssignmentWins(t *testing.T) {
	o := domain.NewOverlay("deps.env")
	o.Set("GOPROXY", "https://proxy.golang.org")
	o.Set("GOPATH", "/tmp/gopath")
	o.Set("GOPROXY", "off")

	v, ok := o.Get("GOPROXY")
	if !ok || v != "off" {
		t.Errorf("expected GOPROXY=off, got %q (defined=%v)", v, ok)
	}

	if o.Len() != 2 {
		t.Errorf("expected 2 variables, got %d", o.Len())
	}

	// Re-assignment keeps the key's original position.
	want := []string{"GOPROXY=off", "GOPATH=/tmp/gopath"}
	if got := o.Environ(); !slices.Equal(got, want) {
		t.Errorf("unexpected environ after reassignment:\n got %v\nwant %v", got, want)
	}
}

func TestOverlay_GetUndefined(t *testing.T) {
	o := domain.NewOverlay("deps.env")

	if _, ok := o.Get("MISSING"); ok {
		t.Error("expected undefined key to report ok=false")
	}
	if o.Len() != 0 {
		t.Errorf("expected empty overlay, got %d variables", o.Len())
	}
	if o.Source() != "deps.env" {
		t.Errorf("unexpected source: %s", o.Source())
	}
}
