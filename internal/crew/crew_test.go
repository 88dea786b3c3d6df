package crew

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/webforge-ai/webforge/internal/provider"
	"github.com/webforge-ai/webforge/internal/token"
)

// fakeProvider records every request and answers from a canned map keyed by
// a substring of the prompt, falling back to a generic reply.
type fakeProvider struct {
	requests []*provider.CompletionRequest
	replies  map[string]string
	failOn   string
}

func (f *fakeProvider) Complete(_ context.Context, req *provider.CompletionRequest) (*provider.Completion, error) {
	f.requests = append(f.requests, req)
	for needle, reply := range f.replies {
		if strings.Contains(req.Prompt, needle) {
			if f.failOn == needle {
				return nil, errors.New("model overloaded")
			}
			return &provider.Completion{
				Text:  reply,
				Usage: provider.Usage{InputTokens: 100, OutputTokens: 50},
			}, nil
		}
	}
	if f.failOn != "" && strings.Contains(req.Prompt, f.failOn) {
		return nil, errors.New("model overloaded")
	}
	return &provider.Completion{
		Text:  "generic deliverable",
		Usage: provider.Usage{InputTokens: 100, OutputTokens: 50},
	}, nil
}

func (f *fakeProvider) Name() string         { return "fake" }
func (f *fakeProvider) DefaultModel() string { return "gpt-4o" }
func (f *fakeProvider) ContextWindow() int   { return 128000 }

func newTestCrew(t *testing.T, p Project, fp *fakeProvider) *Crew {
	t.Helper()
	counter := token.NewCounter()
	store := token.NewOutputStore("gpt-4o", token.DefaultLimits(), token.NewTruncator(counter))
	return &Crew{
		Project:      p,
		Provider:     fp,
		Store:        store,
		Usage:        NewUsageTracker(nil),
		DefaultModel: "gpt-4o",
	}
}

func TestRunWritesDeliverables(t *testing.T) {
	dir := t.TempDir()
	fp := &fakeProvider{}
	c := newTestCrew(t, Project{
		Name:      "My Shop",
		Type:      TypeEcommerce,
		OutputDir: dir,
	}, fp)

	result, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantDir := filepath.Join(dir, "my-shop")
	if result.ProjectDir != wantDir {
		t.Errorf("ProjectDir = %q, want %q", result.ProjectDir, wantDir)
	}
	if len(result.Tasks) != 7 {
		t.Fatalf("completed %d tasks, want 7", len(result.Tasks))
	}
	for _, tr := range result.Tasks {
		path := filepath.Join(wantDir, tr.OutFile)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("deliverable %s not written: %v", tr.OutFile, err)
		}
	}
}

func TestRunForwardsContext(t *testing.T) {
	fp := &fakeProvider{replies: map[string]string{
		"project plan": "PLAN-CONTENTS",
	}}
	c := newTestCrew(t, Project{
		Name:      "Promo",
		Type:      TypeLanding,
		OutputDir: t.TempDir(),
	}, fp)

	if _, err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// The requirements task (second request) must carry the planning output.
	if len(fp.requests) < 2 {
		t.Fatalf("got %d requests", len(fp.requests))
	}
	if !strings.Contains(fp.requests[1].Prompt, "PLAN-CONTENTS") {
		t.Errorf("requirements prompt missing planning output:\n%s", fp.requests[1].Prompt)
	}
	// The first task has no prior context.
	if strings.Contains(fp.requests[0].Prompt, "Context from previous project phases") {
		t.Error("planning prompt should have no context section")
	}
}

func TestRunStopsOnProviderError(t *testing.T) {
	fp := &fakeProvider{failOn: "requirements"}
	fp.replies = map[string]string{"requirements": ""}
	c := newTestCrew(t, Project{
		Name:      "Orders",
		Type:      TypeAPI,
		OutputDir: t.TempDir(),
	}, fp)

	_, err := c.Run(context.Background())
	if err == nil {
		t.Fatal("Run should fail when the provider errors")
	}
	if !strings.Contains(err.Error(), TaskRequirements) {
		t.Errorf("error %q does not name the failing task", err)
	}
}

func TestRunModelSelection(t *testing.T) {
	fp := &fakeProvider{}
	c := newTestCrew(t, Project{
		Name:      "Dash",
		Type:      TypeDashboard,
		OutputDir: t.TempDir(),
	}, fp)
	c.AgentModels = map[string]string{"qa_engineer": "o3-mini"}

	result, err := c.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	models := make(map[string]string)
	for _, tr := range result.Tasks {
		models[tr.TaskID] = tr.Model
	}
	// Config override wins for QA, persona preference elsewhere.
	if models[TaskTesting] != "o3-mini" {
		t.Errorf("testing model = %q, want o3-mini", models[TaskTesting])
	}
	if models[TaskPlanning] != "gpt-4.1" {
		t.Errorf("planning model = %q, want gpt-4.1", models[TaskPlanning])
	}
	if models[TaskBackend] != "gpt-4o" {
		t.Errorf("backend model = %q, want gpt-4o", models[TaskBackend])
	}
}

func TestRunRecordsUsage(t *testing.T) {
	fp := &fakeProvider{}
	c := newTestCrew(t, Project{
		Name:      "Promo",
		Type:      TypeLanding,
		OutputDir: t.TempDir(),
	}, fp)

	if _, err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	in, out := c.Usage.Totals()
	if in != 600 || out != 300 {
		t.Errorf("usage totals = %d, %d; want 600, 300", in, out)
	}
}

func TestRunProgressCallback(t *testing.T) {
	fp := &fakeProvider{}
	c := newTestCrew(t, Project{
		Name:      "Orders",
		Type:      TypeAPI,
		OutputDir: t.TempDir(),
	}, fp)

	var lines []string
	c.Progress = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	if _, err := c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(lines) < 6 {
		t.Errorf("got %d progress lines, want one per task", len(lines))
	}
	if !strings.Contains(lines[0], "Project Manager") {
		t.Errorf("first progress line = %q", lines[0])
	}
}
