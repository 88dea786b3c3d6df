// Package crew drives the sequential multi-agent pipeline: it builds the
// task graph for a project, briefs each agent with budget-truncated context
// from prior tasks, and persists every deliverable.
package crew

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/webforge-ai/webforge/internal/agent"
	"github.com/webforge-ai/webforge/internal/provider"
	"github.com/webforge-ai/webforge/internal/scaffold"
	"github.com/webforge-ai/webforge/internal/token"
)

// Crew runs the agent pipeline for one project. One task executes at a
// time; there is no parallelism to manage.
type Crew struct {
	Project  Project
	Provider provider.Provider
	Store    *token.OutputStore
	Usage    *UsageTracker

	// DefaultModel is used when neither config nor the persona names one.
	DefaultModel string
	// AgentModels maps persona keys to model overrides from config.
	AgentModels map[string]string

	// Progress receives human-readable status lines. Nil means silent.
	Progress func(format string, args ...any)
}

// TaskResult describes one completed task.
type TaskResult struct {
	TaskID    string
	Model     string
	OutFile   string
	Usage     provider.Usage
	Truncated bool
}

// Result is the outcome of a full pipeline run.
type Result struct {
	ProjectDir string
	Tasks      []TaskResult
	// Outputs holds the full (untruncated) deliverable text per task ID.
	Outputs map[string]string
}

// Run executes every task in order. The first provider error aborts the
// run; truncation never does.
func (c *Crew) Run(ctx context.Context) (*Result, error) {
	tasks := BuildTasks(c.Project)
	projectDir := filepath.Join(c.Project.OutputDir, scaffold.Slugify(c.Project.Name))

	result := &Result{
		ProjectDir: projectDir,
		Outputs:    make(map[string]string, len(tasks)),
	}

	budget := c.Store.Budget()
	for _, task := range tasks {
		c.progressf("%s: %s", task.Agent.Role, task.Name)

		contextText := c.Store.Combined(task.ContextIDs)
		model := c.modelFor(task.Agent)

		completion, err := c.Provider.Complete(ctx, &provider.CompletionRequest{
			Model:        model,
			SystemPrompt: task.Agent.SystemPrompt(),
			Prompt:       agent.TaskPrompt(task.Description, task.ExpectedOutput, contextText),
			MaxTokens:    budget.Response,
		})
		if err != nil {
			return nil, fmt.Errorf("task %q (%s): %w", task.ID, task.Agent.Role, err)
		}

		stored := c.Store.Store(task.ID, completion.Text)
		truncated := stored != completion.Text
		if truncated {
			c.progressf("  output truncated to %d-token context budget", budget.Context)
		}

		if task.OutFile != "" {
			path := filepath.Join(projectDir, task.OutFile)
			if err := scaffold.WriteFile(path, completion.Text); err != nil {
				return nil, fmt.Errorf("task %q: write deliverable: %w", task.ID, err)
			}
		}

		c.Usage.Record(task.ID, model, completion.Usage.InputTokens, completion.Usage.OutputTokens)

		result.Outputs[task.ID] = completion.Text
		result.Tasks = append(result.Tasks, TaskResult{
			TaskID:    task.ID,
			Model:     model,
			OutFile:   task.OutFile,
			Usage:     completion.Usage,
			Truncated: truncated,
		})
	}

	return result, nil
}

// modelFor resolves the model for a persona: config override, then the
// persona's preference, then the crew default.
func (c *Crew) modelFor(p *agent.Persona) string {
	if m, ok := c.AgentModels[p.Key]; ok && m != "" {
		return m
	}
	if p.PreferredModel != "" {
		return p.PreferredModel
	}
	return c.DefaultModel
}

func (c *Crew) progressf(format string, args ...any) {
	if c.Progress != nil {
		c.Progress(format, args...)
	}
}
