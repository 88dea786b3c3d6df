package token

import (
	"strings"
	"sync"
)

// contextSeparator joins stored task outputs when building combined context.
const contextSeparator = "\n\n---\n\n"

// OutputStore keeps per-task outputs for one pipeline run, truncating on
// write so any stored output already fits the model's context budget.
// Instances are caller-owned; independent pipelines use independent stores.
//
// The pipeline is strictly sequential, so the mutex is not load-bearing
// today; it guards the map against a future parallel task runner.
type OutputStore struct {
	mu        sync.Mutex
	model     string
	budget    Budget
	truncator *Truncator
	outputs   map[string]string
}

// NewOutputStore creates a store for the given model, deriving its budget
// from limits.
func NewOutputStore(model string, limits *Limits, truncator *Truncator) *OutputStore {
	return &OutputStore{
		model:     model,
		budget:    limits.SafeLimit(model),
		truncator: truncator,
		outputs:   make(map[string]string),
	}
}

// Model returns the model this store was constructed for.
func (s *OutputStore) Model() string { return s.model }

// Budget returns the budget derived at construction.
func (s *OutputStore) Budget() Budget { return s.budget }

// Store truncates output to the context budget, stores it under taskID
// (overwriting any prior value), and returns the stored text.
func (s *OutputStore) Store(taskID, output string) string {
	truncated := s.truncator.SummarizeTaskOutput(output, s.budget.Context, s.model)

	s.mu.Lock()
	s.outputs[taskID] = truncated
	s.mu.Unlock()

	return truncated
}

// Get returns the stored output for taskID, or "" when absent. Absence is
// not an error: optional pipeline steps legitimately leave gaps.
func (s *OutputStore) Get(taskID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputs[taskID]
}

// Combined joins the stored outputs for the given task IDs, silently
// skipping absent ones, and re-truncates the result to the context budget.
// The second pass matters: several individually in-budget outputs can still
// exceed the budget once concatenated.
func (s *OutputStore) Combined(taskIDs []string) string {
	s.mu.Lock()
	var parts []string
	for _, id := range taskIDs {
		if out, ok := s.outputs[id]; ok {
			parts = append(parts, out)
		}
	}
	s.mu.Unlock()

	combined := strings.Join(parts, contextSeparator)
	return s.truncator.TruncateToTokenLimit(combined, s.budget.Context, s.model)
}
