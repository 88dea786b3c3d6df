package token

// Budget is the derived token allocation for a model. Context is the portion
// reserved for forwarding prior task outputs, Response the portion reserved
// for the agent's own output. The remaining headroom covers system and task
// instruction text that this layer never measures.
type Budget struct {
	Total    int
	Context  int
	Response int
}

// Limits maps model identifiers to total request-size ceilings and derives
// safe sub-budgets from them. The split ratios are parameters rather than
// constants so callers can tune them per deployment.
type Limits struct {
	Totals        map[string]int
	DefaultTotal  int
	ContextRatio  float64
	ResponseRatio float64
}

// DefaultLimits returns the built-in per-model ceilings, based on observed
// provider behavior rather than advertised context windows.
func DefaultLimits() *Limits {
	return &Limits{
		Totals: map[string]int{
			"gpt-4o":      8000,
			"gpt-4.1":     8000,
			"gpt-4o-mini": 8000,
			"gpt-5-chat":  4000,
			"o3":          4000,
			"o3-mini":     4000,
			"o1-mini":     4000,
			"deepseek-r1": 4000,
			"phi-4":       4000,
		},
		DefaultTotal:  4000,
		ContextRatio:  0.5,
		ResponseRatio: 0.3,
	}
}

// SafeLimit derives the budget for a model. Unknown models get DefaultTotal;
// the lookup never fails.
func (l *Limits) SafeLimit(model string) Budget {
	total, ok := l.Totals[model]
	if !ok {
		total = l.DefaultTotal
	}
	return Budget{
		Total:    total,
		Context:  int(float64(total) * l.ContextRatio),
		Response: int(float64(total) * l.ResponseRatio),
	}
}
