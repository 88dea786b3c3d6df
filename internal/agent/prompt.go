package agent

import (
	"fmt"
	"strings"
)

// SystemPrompt renders the persona into a system prompt.
func (p *Persona) SystemPrompt() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are a %s.\n\n", p.Role)
	fmt.Fprintf(&sb, "Your goal: %s.\n\n", p.Goal)
	sb.WriteString(p.Backstory)
	sb.WriteString("\n\nProduce your deliverable as well-structured markdown.")
	return sb.String()
}

// TaskPrompt assembles the user prompt for one task: the forwarded context
// from prior tasks (already truncated to budget by the output store), the
// task description, and the expected output.
func TaskPrompt(description, expectedOutput, context string) string {
	var sb strings.Builder
	if context != "" {
		sb.WriteString("Context from previous project phases:\n\n")
		sb.WriteString(context)
		sb.WriteString("\n\n---\n\n")
	}
	sb.WriteString(strings.TrimSpace(description))
	if expectedOutput != "" {
		fmt.Fprintf(&sb, "\n\nExpected output: %s", expectedOutput)
	}
	return sb.String()
}
