package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lmartens/dayflow/internal/config"
	"github.com/lmartens/dayflow/internal/domain"
	"github.com/lmartens/dayflow/internal/store"
	"github.com/lmartens/dayflow/internal/todo"
)

// ErrNoDocuments is returned when no document ids are configured.
var ErrNoDocuments = errors.New("no documents configured: add google.document_ids to the config file")

type syncService struct {
	fetcher Fetcher
	store   Snapshots
	cfg     *config.Config
	now     func() time.Time
}

// NewSyncService builds the sync pipeline: fetch each configured
// document, derive its tasks, and replace the stored snapshot.
func NewSyncService(fetcher Fetcher, snapshots Snapshots, cfg *config.Config) SyncService {
	return &syncService{fetcher: fetcher, store: snapshots, cfg: cfg, now: time.Now}
}

// Sync refreshes every configured document. A failing document is
// recorded and skipped so one bad doc does not block the rest; the
// snapshot is only replaced when at least one document synced, keeping
// the previous sync usable after a total outage.
func (s *syncService) Sync(ctx context.Context) (*SyncResult, error) {
	ids := s.cfg.Google.DocumentIDs
	if len(ids) == 0 {
		return nil, ErrNoDocuments
	}

	result := &SyncResult{SyncedAt: s.now().UTC()}
	var projects []store.Project

	for _, id := range ids {
		doc, err := s.fetcher.Refresh(ctx, id)
		if err != nil {
			result.Failures = append(result.Failures, SyncFailure{DocumentID: id, Err: err})
			continue
		}

		tasks, warnings := todo.Derive(doc, nil)
		result.Warnings = append(result.Warnings, warnings...)

		name := domain.CoalesceStr(doc.Title, id)
		for i := range tasks {
			tasks[i].Project = name
		}

		projects = append(projects, store.Project{
			Name:       name,
			DocumentID: id,
			SyncedAt:   result.SyncedAt,
			Tasks:      tasks,
		})

		summary := ProjectSummary{Name: name, DocumentID: id, TaskCount: len(tasks)}
		for _, t := range tasks {
			if t.Completed {
				summary.DoneCount++
			}
		}
		result.Projects = append(result.Projects, summary)
	}

	if len(projects) == 0 {
		return result, fmt.Errorf("sync failed for all %d documents", len(ids))
	}

	if err := s.store.Replace(ctx, projects); err != nil {
		return result, fmt.Errorf("storing sync snapshot: %w", err)
	}
	return result, nil
}
