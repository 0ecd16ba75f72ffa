package services_test

import (
	"errors"
	"strings"
	"testing"

	"movielog/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrLookupFailed, "resolve", "details", "request failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrLookupFailed) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"resolve", "details", "request failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToLookupFailed(t *testing.T) {
	err := services.Wrap(nil, "resolve", "search", "no marker", nil)
	if !errors.Is(err, services.ErrLookupFailed) {
		t.Fatalf("expected lookup failed marker, got %v", err)
	}
}

func TestClassifyMapping(t *testing.T) {
	cases := []struct {
		err  error
		want services.Outcome
	}{
		{services.Wrap(services.ErrSkippedRow, "normalize", "", "no title", nil), services.OutcomeSkipped},
		{services.Wrap(services.ErrNotFound, "resolve", "search", "zero results", nil), services.OutcomeNotFound},
		{services.Wrap(services.ErrLookupFailed, "resolve", "credits", "status 500", nil), services.OutcomeLookupFailed},
		{services.Wrap(services.ErrAlreadyExists, "write", "", "Parasite-2019.md", nil), services.OutcomeExists},
		{services.Wrap(services.ErrSetup, "import", "open", "missing file", nil), services.OutcomeSetup},
		{errors.New("unclassified"), services.OutcomeFailed},
	}
	for _, tc := range cases {
		if got := services.Classify(tc.err); got != tc.want {
			t.Fatalf("Classify(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestIsFatal(t *testing.T) {
	fatal := services.Wrap(services.ErrSetup, "import", "open", "missing file", nil)
	if !services.IsFatal(fatal) {
		t.Fatal("expected setup errors to be fatal")
	}
	if services.IsFatal(services.Wrap(services.ErrNotFound, "resolve", "", "", nil)) {
		t.Fatal("expected row errors to be non-fatal")
	}
}
