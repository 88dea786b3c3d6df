package crew

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRecordKnownModel(t *testing.T) {
	tracker := NewUsageTracker(nil)

	// gpt-4o: $2.50/M input, $10/M output.
	cost := tracker.Record(TaskPlanning, "gpt-4o", 1_000_000, 500_000)
	want := 2.50 + 5.0
	if !almostEqual(cost, want) {
		t.Errorf("cost = %f, want %f", cost, want)
	}
	if !almostEqual(tracker.TotalCost(), want) {
		t.Errorf("TotalCost = %f, want %f", tracker.TotalCost(), want)
	}
}

func TestRecordAccumulates(t *testing.T) {
	tracker := NewUsageTracker(nil)
	tracker.Record(TaskPlanning, "gpt-4o", 100_000, 0)
	tracker.Record(TaskRequirements, "gpt-4o", 100_000, 0)

	if !almostEqual(tracker.TotalCost(), 0.50) {
		t.Errorf("TotalCost = %f, want 0.50", tracker.TotalCost())
	}
	in, out := tracker.Totals()
	if in != 200_000 || out != 0 {
		t.Errorf("Totals = %d, %d", in, out)
	}
}

func TestRecordVersionedModelPrefixMatch(t *testing.T) {
	tracker := NewUsageTracker(nil)

	cost := tracker.Record(TaskBackend, "gpt-4o-2024-08-06", 1_000_000, 0)
	if !almostEqual(cost, 2.50) {
		t.Errorf("versioned gpt-4o cost = %f, want 2.50", cost)
	}
}

func TestRecordUnknownModelZeroCost(t *testing.T) {
	tracker := NewUsageTracker(nil)

	if cost := tracker.Record(TaskBackend, "mystery-model", 1_000_000, 1_000_000); cost != 0 {
		t.Errorf("unknown model cost = %f, want 0", cost)
	}
}

func TestPricingOverrides(t *testing.T) {
	tracker := NewUsageTracker(map[string]ModelPricing{
		"gpt-4o": {InputPerMillion: 1.0, OutputPerMillion: 1.0},
	})

	if cost := tracker.Record(TaskPlanning, "gpt-4o", 1_000_000, 1_000_000); !almostEqual(cost, 2.0) {
		t.Errorf("overridden cost = %f, want 2.0", cost)
	}
}

func TestSummaryEmpty(t *testing.T) {
	tracker := NewUsageTracker(nil)
	if got := tracker.Summary(); got != "No usage recorded." {
		t.Errorf("Summary = %q", got)
	}
}

func TestSummaryListsTasks(t *testing.T) {
	tracker := NewUsageTracker(nil)
	tracker.Record(TaskPlanning, "gpt-4.1", 1000, 2000)
	tracker.Record(TaskTesting, "gpt-4o-mini", 500, 800)

	summary := tracker.Summary()
	for _, want := range []string{"(2 tasks)", TaskPlanning, TaskTesting, "gpt-4.1", "gpt-4o-mini", "Total tokens: 1500 input + 2800 output = 4300"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary missing %q:\n%s", want, summary)
		}
	}
}
