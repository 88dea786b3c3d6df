package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/webforge-ai/webforge/internal/history"
)

func newRunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List past generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			infos, err := store.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			for _, info := range infos {
				status := successStyle.Render(info.Status)
				if info.Status == history.StatusFailed {
					status = errorStyle.Render(info.Status)
				}
				fmt.Printf("%s  %s\n", titleStyle.Render(info.ProjectName), dimStyle.Render(info.ID))
				fmt.Printf("  %s · %s · %s · $%.4f · %s\n",
					info.ProjectType, info.Model, status, info.Cost,
					info.CreatedAt.Local().Format(time.DateTime))
			}
			return nil
		},
	}

	cmd.AddCommand(newRunsShowCmd())
	cmd.AddCommand(newRunsDeleteCmd())
	return cmd
}

func newRunsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show per-task detail for one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Load(args[0])
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render(run.ProjectName) + " " + dimStyle.Render(run.ID))
			fmt.Printf("  Type:     %s\n", run.ProjectType)
			fmt.Printf("  Provider: %s (%s)\n", run.Provider, run.Model)
			fmt.Printf("  Status:   %s\n", run.Status)
			fmt.Printf("  Output:   %s\n", run.ProjectDir)
			fmt.Printf("  Tokens:   %d input, %d output\n", run.InputTokens, run.OutputTokens)
			fmt.Printf("  Cost:     $%.4f\n", run.Cost)
			if len(run.Tasks) > 0 {
				fmt.Println("  Tasks:")
				for _, t := range run.Tasks {
					note := ""
					if t.Truncated {
						note = dimStyle.Render(" (truncated)")
					}
					fmt.Printf("    %-14s %s  in=%d out=%d%s\n",
						t.TaskID, t.Model, t.InputTokens, t.OutputTokens, note)
				}
			}
			return nil
		},
	}
}

func newRunsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a run record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Println(successStyle.Render("✓ Run deleted"))
			return nil
		},
	}
}

func openHistory() (*history.Store, error) {
	cfg := initConfig()
	dbPath := cfg.HistoryDB
	if dbPath == "" {
		var err error
		dbPath, err = history.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return history.Open(dbPath)
}
