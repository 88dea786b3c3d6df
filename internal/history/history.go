// Package history persists completed pipeline runs in a SQLite database so
// the runs command can show what was generated, where, and what it cost.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id            TEXT PRIMARY KEY,
    created_at    TEXT NOT NULL,
    project_name  TEXT NOT NULL,
    project_type  TEXT NOT NULL,
    project_dir   TEXT NOT NULL,
    provider      TEXT NOT NULL,
    model         TEXT NOT NULL,
    input_tokens  INTEGER DEFAULT 0,
    output_tokens INTEGER DEFAULT 0,
    cost          REAL DEFAULT 0,
    status        TEXT NOT NULL,
    tasks         TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Run statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// TaskRecord summarizes one task within a run.
type TaskRecord struct {
	TaskID       string  `json:"task_id"`
	Model        string  `json:"model"`
	OutFile      string  `json:"out_file"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	Truncated    bool    `json:"truncated"`
	Cost         float64 `json:"cost,omitempty"`
}

// Run is one pipeline execution, successful or not.
type Run struct {
	ID           string
	CreatedAt    time.Time
	ProjectName  string
	ProjectType  string
	ProjectDir   string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	Cost         float64
	Status       string
	Tasks        []TaskRecord
}

// NewRun creates a Run with a fresh ID and timestamp.
func NewRun(projectName, projectType string) *Run {
	return &Run{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		ProjectName: projectName,
		ProjectType: projectType,
	}
}

// RunInfo is the listing view of a run.
type RunInfo struct {
	ID          string
	CreatedAt   time.Time
	ProjectName string
	ProjectType string
	Model       string
	Cost        float64
	Status      string
}

// Store persists runs in SQLite.
type Store struct {
	db *sql.DB
}

// DefaultDBPath returns the default database path
// (~/.local/share/webforge/runs.db).
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "webforge", "runs.db"), nil
}

// Open opens (or creates) the database at dbPath and ensures the schema exists.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL keeps reads cheap while a run is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &Store{db: db}, nil
}

// Save inserts or replaces a run.
func (s *Store) Save(run *Run) error {
	tasksJSON, err := json.Marshal(run.Tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO runs
			(id, created_at, project_name, project_type, project_dir, provider, model,
			 input_tokens, output_tokens, cost, status, tasks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.CreatedAt.Format(time.RFC3339Nano),
		run.ProjectName,
		run.ProjectType,
		run.ProjectDir,
		run.Provider,
		run.Model,
		run.InputTokens,
		run.OutputTokens,
		run.Cost,
		run.Status,
		string(tasksJSON),
	)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// Load returns the full record for one run.
func (s *Store) Load(id string) (*Run, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, project_name, project_type, project_dir, provider, model,
		       input_tokens, output_tokens, cost, status, tasks
		FROM runs WHERE id = ?`, id)

	var run Run
	var createdAt, tasksJSON string
	err := row.Scan(
		&run.ID, &createdAt, &run.ProjectName, &run.ProjectType, &run.ProjectDir,
		&run.Provider, &run.Model,
		&run.InputTokens, &run.OutputTokens, &run.Cost, &run.Status, &tasksJSON,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("load run: %w", err)
	}

	run.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if err := json.Unmarshal([]byte(tasksJSON), &run.Tasks); err != nil {
		return nil, fmt.Errorf("unmarshal tasks: %w", err)
	}
	return &run, nil
}

// List returns run summaries, newest first.
func (s *Store) List() ([]RunInfo, error) {
	rows, err := s.db.Query(`
		SELECT id, created_at, project_name, project_type, model, cost, status
		FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var infos []RunInfo
	for rows.Next() {
		var info RunInfo
		var createdAt string
		if err := rows.Scan(&info.ID, &createdAt, &info.ProjectName, &info.ProjectType,
			&info.Model, &info.Cost, &info.Status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		info.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes a run by ID.
func (s *Store) Delete(id string) error {
	result, err := s.db.Exec("DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("run %s not found", id)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
