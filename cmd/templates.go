package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webforge-ai/webforge/internal/scaffold"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list-templates",
		Aliases: []string{"templates"},
		Short:   "List the available project templates",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(titleStyle.Render("Available templates"))
			fmt.Println()
			for _, tmpl := range scaffold.Catalog() {
				fmt.Printf("%s  %s\n", titleStyle.Render(tmpl.Key), dimStyle.Render("estimated "+tmpl.Estimate))
				fmt.Printf("  %s\n", tmpl.Description)
				fmt.Printf("  Features: %s\n\n", strings.Join(tmpl.Features, ", "))
			}
			fmt.Println(dimStyle.Render("Usage: webforge create --project <key>"))
		},
	}
}
