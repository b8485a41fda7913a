package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lmartens/dayflow/internal/config"
	"github.com/lmartens/dayflow/internal/domain"
	"github.com/lmartens/dayflow/internal/scheduler"
)

var (
	// ErrEmptySnapshot is returned when planning is attempted before any
	// successful sync.
	ErrEmptySnapshot = errors.New("no synced tasks: run `dayflow sync` first")

	// ErrTaskNotFound is returned when an explain target matches nothing.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousTask is returned when an id prefix matches several tasks.
	ErrAmbiguousTask = errors.New("task id prefix is ambiguous")
)

type planService struct {
	store Snapshots
	cfg   *config.Config
	now   func() time.Time
}

// NewPlanService builds the planning pipeline on top of the last sync
// snapshot and the configured recurring blocks.
func NewPlanService(snapshots Snapshots, cfg *config.Config) PlanService {
	return &planService{store: snapshots, cfg: cfg, now: time.Now}
}

// PlanToday schedules the open tasks for the current day, starting at
// the later of now and the configured work start.
func (s *planService) PlanToday(ctx context.Context) (*domain.DaySchedule, error) {
	days, err := s.PlanDays(ctx, 1)
	if err != nil {
		return nil, err
	}
	return &days[0], nil
}

// PlanDays schedules the open tasks across the requested number of
// days as one continuous run partitioned per day.
func (s *planService) PlanDays(ctx context.Context, days int) ([]domain.DaySchedule, error) {
	tasks, err := s.Prioritized(ctx)
	if err != nil {
		return nil, err
	}

	start, err := s.planStart()
	if err != nil {
		return nil, err
	}

	schedules, err := scheduler.PlaceDays(tasks, start, days, s.cfg.BlocksFor)
	if err != nil {
		return nil, fmt.Errorf("placing tasks: %w", err)
	}
	return schedules, nil
}

// Prioritized returns the global priority order across all synced
// projects.
func (s *planService) Prioritized(ctx context.Context) ([]domain.Task, error) {
	projects, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sync snapshot: %w", err)
	}
	if len(projects) == 0 {
		return nil, ErrEmptySnapshot
	}

	lists := make([]scheduler.ProjectTasks, 0, len(projects))
	for _, p := range projects {
		lists = append(lists, scheduler.ProjectTasks{
			Project:    p.Name,
			DocumentID: p.DocumentID,
			Tasks:      p.Tasks,
		})
	}
	return scheduler.Prioritize(lists), nil
}

// Explain locates a task by id or unique id prefix and reports its
// position in the priority order.
func (s *planService) Explain(ctx context.Context, taskID string) (*Explanation, error) {
	tasks, err := s.Prioritized(ctx)
	if err != nil {
		return nil, err
	}

	var matches []int
	for i, t := range tasks {
		if t.ID == taskID {
			matches = []int{i}
			break
		}
		if strings.HasPrefix(t.ID, taskID) {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, taskID)
	case 1:
		i := matches[0]
		return &Explanation{Task: tasks[i], Position: i + 1, QueueLength: len(tasks)}, nil
	default:
		return nil, fmt.Errorf("%w: %q matches %d tasks", ErrAmbiguousTask, taskID, len(matches))
	}
}

// planStart is the placement origin: the configured work start on the
// current day, clamped forward to now when the day is underway.
func (s *planService) planStart() (time.Time, error) {
	loc, err := s.cfg.Location()
	if err != nil {
		return time.Time{}, err
	}
	now := s.now().In(loc)
	workStart, _ := s.cfg.WorkWindow(now)
	if now.After(workStart) {
		return now, nil
	}
	return workStart, nil
}
