package token

import "testing"

func TestSafeLimitKnownModels(t *testing.T) {
	limits := DefaultLimits()

	tests := []struct {
		model                     string
		total, context, response int
	}{
		{"gpt-4o", 8000, 4000, 2400},
		{"gpt-4.1", 8000, 4000, 2400},
		{"o3", 4000, 2000, 1200},
		{"o1-mini", 4000, 2000, 1200},
	}
	for _, tt := range tests {
		b := limits.SafeLimit(tt.model)
		if b.Total != tt.total || b.Context != tt.context || b.Response != tt.response {
			t.Errorf("SafeLimit(%q) = %+v, want total=%d context=%d response=%d",
				tt.model, b, tt.total, tt.context, tt.response)
		}
	}
}

func TestSafeLimitUnknownModelDefaults(t *testing.T) {
	b := DefaultLimits().SafeLimit("mystery-model-9000")
	if b.Total != 4000 || b.Context != 2000 || b.Response != 1200 {
		t.Fatalf("unknown model budget = %+v, want 4000/2000/1200", b)
	}
}

func TestBudgetInvariant(t *testing.T) {
	limits := DefaultLimits()
	models := []string{"unknown"}
	for m := range limits.Totals {
		models = append(models, m)
	}
	for _, m := range models {
		b := limits.SafeLimit(m)
		if b.Context+b.Response > b.Total {
			t.Errorf("model %q: context %d + response %d exceeds total %d",
				m, b.Context, b.Response, b.Total)
		}
	}
}

func TestCustomRatios(t *testing.T) {
	limits := &Limits{
		Totals:        map[string]int{"m": 1000},
		DefaultTotal:  1000,
		ContextRatio:  0.7,
		ResponseRatio: 0.2,
	}
	b := limits.SafeLimit("m")
	if b.Context != 700 || b.Response != 200 {
		t.Fatalf("custom ratio budget = %+v, want context=700 response=200", b)
	}
}
