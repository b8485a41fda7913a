package service

import (
	"context"
	"time"

	"github.com/lmartens/dayflow/internal/docsource"
	"github.com/lmartens/dayflow/internal/domain"
	"github.com/lmartens/dayflow/internal/store"
)

// Fetcher retrieves parsed documents. Fetch may serve cached results;
// Refresh always goes to the source.
type Fetcher interface {
	Fetch(ctx context.Context, documentID string) (docsource.Document, error)
	Refresh(ctx context.Context, documentID string) (docsource.Document, error)
}

// Snapshots persists and reloads the last sync result.
type Snapshots interface {
	Replace(ctx context.Context, projects []store.Project) error
	Load(ctx context.Context) ([]store.Project, error)
}

// ProjectSummary is the per-document outcome of a sync.
type ProjectSummary struct {
	Name       string
	DocumentID string
	TaskCount  int
	DoneCount  int
}

// SyncFailure records a document that could not be synced.
type SyncFailure struct {
	DocumentID string
	Err        error
}

// SyncResult is the outcome of one sync run. Failures and Warnings are
// partial: the remaining documents still synced.
type SyncResult struct {
	SyncedAt time.Time
	Projects []ProjectSummary
	Failures []SyncFailure
	Warnings []string
}

type SyncService interface {
	Sync(ctx context.Context) (*SyncResult, error)
}

// Explanation describes one task's place in the global priority order.
type Explanation struct {
	Task        domain.Task
	Position    int // 1-based within the priority order
	QueueLength int
}

type PlanService interface {
	PlanToday(ctx context.Context) (*domain.DaySchedule, error)
	PlanDays(ctx context.Context, days int) ([]domain.DaySchedule, error)
	Prioritized(ctx context.Context) ([]domain.Task, error)
	Explain(ctx context.Context, taskID string) (*Explanation, error)
}
