package token

import (
	"strings"
	"testing"
)

func newTestStore(model string) (*OutputStore, *Counter) {
	c := newTestCounter()
	return NewOutputStore(model, DefaultLimits(), NewTruncator(c)), c
}

func TestStoreRoundTrip(t *testing.T) {
	s, _ := newTestStore("o3")
	stored := s.Store("requirements", "## Requirements\n- login\n- catalog")
	if got := s.Get("requirements"); got != stored {
		t.Fatalf("Get = %q, want the value Store returned %q", got, stored)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s, _ := newTestStore("o3")
	if got := s.Get("nonexistent"); got != "" {
		t.Fatalf("missing key returned %q, want empty string", got)
	}
}

func TestStoreOverwrite(t *testing.T) {
	s, _ := newTestStore("o3")
	s.Store("plan", "first draft")
	s.Store("plan", "second draft")
	if got := s.Get("plan"); got != "second draft" {
		t.Fatalf("Get after overwrite = %q", got)
	}
}

func TestStoreTruncatesToContextBudget(t *testing.T) {
	s, c := newTestStore("o3") // total 4000 -> context budget 2000
	if b := s.Budget(); b.Context != 2000 || b.Response != 1200 {
		t.Fatalf("budget = %+v, want context=2000 response=1200", b)
	}

	// ~5000-token output across many lines must come back at or near the
	// 2000-token context budget.
	lines := make([]string, 500)
	for i := range lines {
		lines[i] = strings.Repeat("x", 10)
	}
	stored := s.Store("backend", strings.Join(lines, "\n"))

	const markerAllowance = 80
	if n := c.Count(stored, "o3"); n > 2000+markerAllowance {
		t.Fatalf("stored output is %d tokens, exceeds context budget of 2000", n)
	}
	if stored == "" {
		t.Fatal("stored output is empty")
	}
}

func TestCombinedSkipsMissing(t *testing.T) {
	s, _ := newTestStore("o3")
	s.Store("a", "alpha output")

	withMissing := s.Combined([]string{"a", "missing"})
	onlyPresent := s.Combined([]string{"a"})
	if withMissing != onlyPresent {
		t.Fatalf("combined context differs when absent ids are included:\n%q\nvs\n%q",
			withMissing, onlyPresent)
	}
}

func TestCombinedJoinsWithSeparator(t *testing.T) {
	s, _ := newTestStore("o3")
	s.Store("a", "alpha")
	s.Store("b", "beta")

	got := s.Combined([]string{"a", "b"})
	if got != "alpha\n\n---\n\nbeta" {
		t.Fatalf("combined = %q", got)
	}
}

func TestCombinedRetruncates(t *testing.T) {
	s, c := newTestStore("o3")

	// Each output individually fits the 2000-token context budget, but the
	// concatenation does not; Combined must apply a second truncation pass.
	half := strings.Repeat("a", 1500) + "\n" + strings.Repeat("b", 300)
	s.Store("x", half)
	s.Store("y", half)

	got := s.Combined([]string{"x", "y"})
	const markerAllowance = 80
	if n := c.Count(got, "o3"); n > 2000+markerAllowance {
		t.Fatalf("combined context is %d tokens, exceeds context budget", n)
	}
	if !strings.Contains(got, "Content truncated:") {
		t.Fatal("expected elision marker in re-truncated combined context")
	}
}
