package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

// Project is one synced document and the tasks derived from it.
type Project struct {
	Name       string
	DocumentID string
	SyncedAt   time.Time
	Tasks      []domain.Task
}

// SnapshotStore persists the last sync result so one-shot commands can
// plan without refetching the documents.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore creates a SnapshotStore on an opened database.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Replace swaps the whole snapshot for the given projects in a single
// transaction: readers see either the previous sync or the new one,
// never a mix.
func (s *SnapshotStore) Replace(ctx context.Context, projects []Project) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting snapshot transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clearing projects: %w", err)
	}

	for _, p := range projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (document_id, name, synced_at) VALUES (?, ?, ?)`,
			p.DocumentID, p.Name, p.SyncedAt.UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting project %s: %w", p.DocumentID, err)
		}

		for i, t := range p.Tasks {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (id, document_id, position, title, section, estimated_minutes,
					deadline_user, deadline_external, completed, source)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, p.DocumentID, i, t.Title, t.Section,
				int(t.EstimatedDuration/time.Minute),
				nullableTime(t.DeadlineUser), nullableTime(t.DeadlineExternal),
				boolToInt(t.Completed), t.Source,
			); err != nil {
				return fmt.Errorf("inserting task %s: %w", t.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	committed = true
	return nil
}

// Load returns the stored snapshot, projects ordered by name and tasks
// in their original document order.
func (s *SnapshotStore) Load(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT document_id, name, synced_at FROM projects ORDER BY name, document_id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var syncedAt string
		if err := rows.Scan(&p.DocumentID, &p.Name, &syncedAt); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p.SyncedAt, err = time.Parse(time.RFC3339, syncedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing synced_at for %s: %w", p.DocumentID, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	for i := range projects {
		tasks, err := s.loadTasks(ctx, projects[i].DocumentID)
		if err != nil {
			return nil, err
		}
		projects[i].Tasks = tasks
	}
	return projects, nil
}

func (s *SnapshotStore) loadTasks(ctx context.Context, documentID string) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, section, estimated_minutes, deadline_user, deadline_external, completed, source
		FROM tasks WHERE document_id = ? ORDER BY position`, documentID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for %s: %w", documentID, err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var minutes int
		var user, external sql.NullString
		var completed int
		if err := rows.Scan(&t.ID, &t.Title, &t.Section, &minutes, &user, &external, &completed, &t.Source); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.EstimatedDuration = time.Duration(minutes) * time.Minute
		t.Completed = completed != 0
		if t.DeadlineUser, err = parseNullableTime(user); err != nil {
			return nil, fmt.Errorf("parsing user deadline for task %s: %w", t.ID, err)
		}
		if t.DeadlineExternal, err = parseNullableTime(external); err != nil {
			return nil, fmt.Errorf("parsing external deadline for task %s: %w", t.ID, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
