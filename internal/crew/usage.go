package crew

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// ModelPricing holds per-million-token pricing for a model.
type ModelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// TaskUsage records token usage and cost for a single pipeline task.
type TaskUsage struct {
	TaskID       string
	Model        string
	InputTokens  int
	OutputTokens int
	Cost         float64
	Timestamp    time.Time
}

// UsageTracker accumulates token usage and dollar cost across pipeline tasks.
type UsageTracker struct {
	mu      sync.Mutex
	total   float64
	records []TaskUsage
	pricing map[string]ModelPricing
}

// NewUsageTracker creates a UsageTracker with default pricing and optional overrides.
func NewUsageTracker(overrides map[string]ModelPricing) *UsageTracker {
	pricing := DefaultPricing()
	for k, v := range overrides {
		pricing[k] = v
	}
	return &UsageTracker{pricing: pricing}
}

// DefaultPricing returns built-in pricing for well-known models.
func DefaultPricing() map[string]ModelPricing {
	return map[string]ModelPricing{
		// OpenAI / GitHub Models
		"gpt-4o":      {2.50, 10.0},
		"gpt-4o-mini": {0.15, 0.60},
		"gpt-4.1":     {2.0, 8.0},
		"gpt-5-chat":  {1.25, 10.0},
		"o3":          {2.0, 8.0},
		"o3-mini":     {1.10, 4.40},
		"o1-mini":     {1.10, 4.40},
		// Anthropic
		"claude-sonnet-4-20250514": {3.0, 15.0},
		"claude-haiku-4-5":         {0.80, 4.0},
		// DeepSeek
		"deepseek-r1": {0.55, 2.19},
	}
}

// Record logs token usage for one task and returns the task cost.
func (t *UsageTracker) Record(taskID, model string, inputTokens, outputTokens int) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	cost := t.cost(model, inputTokens, outputTokens)
	t.total += cost
	t.records = append(t.records, TaskUsage{
		TaskID:       taskID,
		Model:        model,
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		Cost:         cost,
		Timestamp:    time.Now(),
	})
	return cost
}

// TotalCost returns the accumulated dollar cost.
func (t *UsageTracker) TotalCost() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.total
}

// Totals returns accumulated input and output token counts.
func (t *UsageTracker) Totals() (inputTokens, outputTokens int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range t.records {
		inputTokens += r.InputTokens
		outputTokens += r.OutputTokens
	}
	return inputTokens, outputTokens
}

// Summary returns a formatted per-task usage report.
func (t *UsageTracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.records) == 0 {
		return "No usage recorded."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Run cost: $%.4f (%d tasks)\n\n", t.total, len(t.records))

	totalIn, totalOut := 0, 0
	for _, r := range t.records {
		totalIn += r.InputTokens
		totalOut += r.OutputTokens
		fmt.Fprintf(&sb, "  %-14s %s  in=%d out=%d  $%.4f\n",
			r.TaskID, r.Model, r.InputTokens, r.OutputTokens, r.Cost)
	}
	fmt.Fprintf(&sb, "\nTotal tokens: %d input + %d output = %d",
		totalIn, totalOut, totalIn+totalOut)

	return sb.String()
}

// cost computes the dollar cost for a task. Must be called with lock held.
func (t *UsageTracker) cost(model string, inputTokens, outputTokens int) float64 {
	p, ok := t.pricing[model]
	if !ok {
		// Prefix matching covers versioned model names (e.g. "gpt-4o-2024-08-06").
		for name, pricing := range t.pricing {
			if strings.HasPrefix(model, name) {
				p = pricing
				ok = true
				break
			}
		}
	}
	if !ok {
		return 0 // unknown model, no pricing
	}
	return (float64(inputTokens) * p.InputPerMillion / 1_000_000) +
		(float64(outputTokens) * p.OutputPerMillion / 1_000_000)
}
