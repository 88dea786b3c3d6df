package crew

import (
	"fmt"

	"github.com/webforge-ai/webforge/internal/agent"
)

// Project describes what the crew is asked to build.
type Project struct {
	Name        string
	Type        string
	Description string
	OutputDir   string
}

// Supported project types.
const (
	TypeEcommerce = "ecommerce"
	TypeLanding   = "landing"
	TypeDashboard = "dashboard"
	TypeAPI       = "api"
)

// ValidTypes lists the accepted --project values in display order.
func ValidTypes() []string {
	return []string{TypeEcommerce, TypeLanding, TypeDashboard, TypeAPI}
}

// Task is one step of the pipeline. ContextIDs name the prior tasks whose
// stored outputs are forwarded (budget-truncated) into this task's prompt;
// IDs absent from the store are skipped silently, which lets the same graph
// shape serve project types that omit steps.
type Task struct {
	ID             string
	Name           string
	Agent          *agent.Persona
	Description    string
	ExpectedOutput string
	ContextIDs     []string
	// OutFile is the deliverable path relative to the project directory.
	OutFile string
}

// Task IDs, also used as output-store keys.
const (
	TaskPlanning     = "planning"
	TaskRequirements = "requirements"
	TaskBackend      = "backend"
	TaskFrontend     = "frontend"
	TaskTesting      = "testing"
	TaskDeployment   = "deployment"
	TaskHandoff      = "handoff"
)

// HasBackend reports whether the project type includes a backend build step.
func HasBackend(projectType string) bool {
	return projectType == TypeEcommerce || projectType == TypeDashboard || projectType == TypeAPI
}

// HasFrontend reports whether the project type includes a frontend build step.
func HasFrontend(projectType string) bool {
	return projectType == TypeEcommerce || projectType == TypeLanding || projectType == TypeDashboard
}

// BuildTasks creates the sequential task graph for a project. The shape
// follows the delivery flow: plan, analyze, build, verify, ship, hand off.
// Backend and frontend steps are included only where the project type calls
// for them.
func BuildTasks(p Project) []Task {
	var tasks []Task

	tasks = append(tasks, Task{
		ID:    TaskPlanning,
		Name:  "Project planning",
		Agent: agent.ProjectManager(),
		Description: fmt.Sprintf(`Create a comprehensive project plan for: %s
Project type: %s
Client description: %s

Define:
- Project scope and objectives
- Timeline and milestones
- Team coordination strategy
- Risk assessment
- Success criteria`, p.Name, p.Type, p.Description),
		ExpectedOutput: "Detailed project plan with timeline, milestones, and risk assessment",
		OutFile:        "docs/01-project-plan.md",
	})

	tasks = append(tasks, Task{
		ID:    TaskRequirements,
		Name:  "Requirements analysis",
		Agent: agent.BusinessAnalyst(),
		Description: fmt.Sprintf(`Analyze requirements and create detailed specifications for: %s
Project type: %s
Client needs: %s

Deliver:
- Functional requirements
- User stories with acceptance criteria
- Technical recommendations
- Wireframe suggestions`, p.Name, p.Type, p.Description),
		ExpectedOutput: "Complete requirements document with user stories and technical specifications",
		ContextIDs:     []string{TaskPlanning},
		OutFile:        "docs/02-requirements.md",
	})

	var devTaskIDs []string

	if HasBackend(p.Type) {
		tasks = append(tasks, Task{
			ID:    TaskBackend,
			Name:  "Backend design and implementation",
			Agent: agent.BackendDeveloper(),
			Description: fmt.Sprintf(`Design and implement the backend system for: %s

Based on the requirements, create:
- API architecture and endpoints
- Database schema
- Authentication system
- Business logic implementation
- API documentation`, p.Name),
			ExpectedOutput: "Complete backend design with API, database schema, and documentation",
			ContextIDs:     []string{TaskRequirements},
			OutFile:        "docs/03-backend.md",
		})
		devTaskIDs = append(devTaskIDs, TaskBackend)
	}

	if HasFrontend(p.Type) {
		frontendCtx := []string{TaskRequirements}
		// Landing pages have no API to integrate with.
		if p.Type == TypeEcommerce || p.Type == TypeDashboard {
			frontendCtx = append(frontendCtx, TaskBackend)
		}
		tasks = append(tasks, Task{
			ID:    TaskFrontend,
			Name:  "Frontend implementation",
			Agent: agent.FrontendDeveloper(),
			Description: fmt.Sprintf(`Create the frontend application for: %s
Project type: %s

Implement:
- Responsive user interface
- Component architecture
- API integration (if a backend exists)
- Forms and validation
- Navigation`, p.Name, p.Type),
			ExpectedOutput: "Complete frontend design with responsive layout and all features",
			ContextIDs:     frontendCtx,
			OutFile:        "docs/04-frontend.md",
		})
		devTaskIDs = append(devTaskIDs, TaskFrontend)
	}

	tasks = append(tasks, Task{
		ID:    TaskTesting,
		Name:  "Testing and QA",
		Agent: agent.QAEngineer(),
		Description: fmt.Sprintf(`Create a comprehensive test suite for: %s

Provide:
- Test plan
- Unit tests
- Integration tests
- Test coverage assessment
- Bug report (if any)
- Quality assurance sign-off`, p.Name),
		ExpectedOutput: "Complete test suite with coverage report and quality assessment",
		ContextIDs:     devTaskIDs,
		OutFile:        "docs/05-test-report.md",
	})

	tasks = append(tasks, Task{
		ID:    TaskDeployment,
		Name:  "Deployment setup",
		Agent: agent.DevOpsEngineer(),
		Description: fmt.Sprintf(`Set up deployment infrastructure for: %s

Create:
- Dockerfile(s)
- docker-compose.yml
- CI/CD pipeline (GitHub Actions)
- Nginx configuration
- Deployment documentation
- Environment setup guide`, p.Name),
		ExpectedOutput: "Complete deployment configuration with Docker, CI/CD, and documentation",
		ContextIDs:     []string{TaskTesting},
		OutFile:        "docs/06-deployment.md",
	})

	handoffCtx := make([]string, 0, len(tasks))
	for _, t := range tasks {
		handoffCtx = append(handoffCtx, t.ID)
	}
	tasks = append(tasks, Task{
		ID:    TaskHandoff,
		Name:  "Documentation and handoff",
		Agent: agent.ProjectManager(),
		Description: fmt.Sprintf(`Create the final project documentation and handoff package for: %s

Compile:
- Complete project documentation
- Setup and installation guide
- User manual
- Deployment guide
- Maintenance recommendations
- Future enhancement suggestions`, p.Name),
		ExpectedOutput: "Complete project documentation package ready for client handoff",
		ContextIDs:     handoffCtx,
		OutFile:        "docs/07-handoff.md",
	})

	return tasks
}
