package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/webforge-ai/webforge/internal/crew"
	"github.com/webforge-ai/webforge/internal/history"
	"github.com/webforge-ai/webforge/internal/scaffold"
	"github.com/webforge-ai/webforge/internal/token"
)

func newCreateCmd() *cobra.Command {
	var (
		name            string
		projectType     string
		description     string
		skipBoilerplate bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Run the agent crew to generate a web project",
		Example: `  webforge create --name "My Shop" --project ecommerce --description "Online store for handmade goods"
  webforge create    (prompts interactively)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := term.IsTerminal(int(os.Stdin.Fd()))
			reader := bufio.NewReader(os.Stdin)

			if name == "" {
				if !interactive {
					return fmt.Errorf("--name is required")
				}
				name = promptLine(reader, "Project name: ")
				if name == "" {
					return fmt.Errorf("project name cannot be empty")
				}
			}
			if projectType == "" {
				if !interactive {
					return fmt.Errorf("--project is required (one of: %s)", strings.Join(crew.ValidTypes(), ", "))
				}
				printTemplateMenu()
				projectType = promptLine(reader, "Project type: ")
			}
			if _, ok := scaffold.Lookup(projectType); !ok {
				return fmt.Errorf("unknown project type %q (valid: %s)", projectType, strings.Join(crew.ValidTypes(), ", "))
			}
			if description == "" && interactive {
				description = promptLine(reader, "Describe the project (client needs, audience, constraints): ")
			}

			return runCreate(crew.Project{
				Name:        name,
				Type:        projectType,
				Description: description,
			}, skipBoilerplate)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "project name")
	cmd.Flags().StringVarP(&projectType, "project", "t", "", "project type: "+strings.Join(crew.ValidTypes(), ", "))
	cmd.Flags().StringVarP(&description, "description", "d", "", "client description of the project")
	cmd.Flags().BoolVar(&skipBoilerplate, "skip-boilerplate", false, "only write agent deliverables, no code scaffold")

	return cmd
}

func promptLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(titleStyle.Render(prompt))
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func printTemplateMenu() {
	for _, tmpl := range scaffold.Catalog() {
		fmt.Printf("  %s %s\n", titleStyle.Render(tmpl.Key), dimStyle.Render("("+tmpl.Estimate+")"))
		fmt.Printf("    %s\n", tmpl.Description)
	}
}

func runCreate(project crew.Project, skipBoilerplate bool) error {
	cfg := initConfig()
	project.OutputDir = cfg.OutputDir

	p, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	model := cfg.Model
	if model == "" {
		model = p.DefaultModel()
	}

	counter := token.NewCounter()
	limits := tokenLimits(cfg)
	store := token.NewOutputStore(model, limits, token.NewTruncator(counter))
	tracker := crew.NewUsageTracker(pricingOverrides(cfg))

	budget := store.Budget()
	fmt.Println(titleStyle.Render("webforge") + " " + dimStyle.Render(appVersion))
	fmt.Printf("Project:  %s (%s)\n", project.Name, project.Type)
	fmt.Printf("Provider: %s, model %s\n", p.Name(), model)
	fmt.Printf("Budget:   %d tokens total (%d context, %d response)\n\n",
		budget.Total, budget.Context, budget.Response)

	c := &crew.Crew{
		Project:      project,
		Provider:     p,
		Store:        store,
		Usage:        tracker,
		DefaultModel: model,
		AgentModels:  cfg.AgentModels,
		Progress: func(format string, args ...any) {
			fmt.Println(dimStyle.Render("→ ") + fmt.Sprintf(format, args...))
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	run := history.NewRun(project.Name, project.Type)
	run.Provider = p.Name()
	run.Model = model

	result, runErr := c.Run(ctx)

	run.InputTokens, run.OutputTokens = tracker.Totals()
	run.Cost = tracker.TotalCost()
	if runErr != nil {
		run.Status = history.StatusFailed
	} else {
		run.Status = history.StatusCompleted
		run.ProjectDir = result.ProjectDir
		for _, tr := range result.Tasks {
			run.Tasks = append(run.Tasks, history.TaskRecord{
				TaskID:       tr.TaskID,
				Model:        tr.Model,
				OutFile:      tr.OutFile,
				InputTokens:  tr.Usage.InputTokens,
				OutputTokens: tr.Usage.OutputTokens,
				Truncated:    tr.Truncated,
			})
		}
	}
	saveRun(cfg.HistoryDB, run)

	if runErr != nil {
		return runErr
	}

	if !skipBoilerplate {
		paths, err := scaffold.Generate(result.ProjectDir, project.Name,
			crew.HasBackend(project.Type), crew.HasFrontend(project.Type))
		if err != nil {
			return fmt.Errorf("write boilerplate: %w", err)
		}
		fmt.Printf("\nBoilerplate: %d files\n", len(paths))
	}

	fmt.Println()
	fmt.Println(tracker.Summary())
	fmt.Println()
	fmt.Println(successStyle.Render("✓ Project generated: ") + result.ProjectDir)
	return nil
}

// saveRun persists the run record; history failures are reported but never
// fail the command.
func saveRun(dbPath string, run *history.Run) {
	var err error
	if dbPath == "" {
		dbPath, err = history.DefaultDBPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, dimStyle.Render("history: "+err.Error()))
			return
		}
	}
	store, err := history.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render("history: "+err.Error()))
		return
	}
	defer store.Close()
	if err := store.Save(run); err != nil {
		fmt.Fprintln(os.Stderr, dimStyle.Render("history: "+err.Error()))
	}
}
