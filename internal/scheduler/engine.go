package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

// ErrInvalidInput marks placement inputs rejected before any work begins.
var ErrInvalidInput = errors.New("invalid placement input")

const conflictTimeLayout = "2006-01-02 15:04"

// PlacementResult is the outcome of one continuous placement run.
type PlacementResult struct {
	Scheduled []domain.ScheduledTask
	Blocked   []domain.TimeBlock
	Conflicts []string
}

// Place assigns concrete start/end times to the ordered tasks, starting
// at start and working around the blocked intervals. Tasks are split
// across blocks when necessary and re-selected each step by urgency so
// at-risk deadlines are protected. Completed tasks are skipped entirely.
//
// The input order establishes baseline priority (ties in urgency resolve
// toward it). Deadline violations are reported as conflict strings, never
// as errors; the only error path is structurally invalid input.
func Place(tasks []domain.Task, start time.Time, blocked []domain.TimeBlock) (PlacementResult, error) {
	if start.IsZero() {
		return PlacementResult{}, fmt.Errorf("%w: start must be a concrete instant", ErrInvalidInput)
	}
	for i := range blocked {
		if err := blocked[i].Validate(); err != nil {
			return PlacementResult{}, fmt.Errorf("%w: blocked interval %d: %v", ErrInvalidInput, i, err)
		}
	}

	return newPlaceState(tasks, start, blocked).run()
}

func (st *placeState) run() (PlacementResult, error) {
	for st.anyRemaining() {
		id, ok := st.selectNext()
		if !ok {
			// Defensive termination: work remains but nothing can be
			// selected. Surface it instead of looping or silently
			// truncating the schedule.
			st.conflicts = append(st.conflicts, st.stallConflict())
			break
		}
		st.placeSegment(id)
	}
	return st.finalize()
}

// PlaceDay runs a single placement and wraps it as the schedule of the
// calendar day start falls on.
func PlaceDay(tasks []domain.Task, start time.Time, blocked []domain.TimeBlock) (domain.DaySchedule, error) {
	res, err := Place(tasks, start, blocked)
	if err != nil {
		return domain.DaySchedule{}, err
	}
	return domain.DaySchedule{
		Date:      domain.StartOfDay(start),
		Scheduled: res.Scheduled,
		Blocked:   res.Blocked,
		Conflicts: res.Conflicts,
	}, nil
}

// segment is a raw placed interval before violation flags and split
// metadata are derived.
type segment struct {
	taskID string
	start  time.Time
	end    time.Time
}

type placeState struct {
	tasks     map[string]*domain.Task
	order     []string // incomplete task ids in baseline priority order
	remaining map[string]time.Duration
	blocks    []domain.TimeBlock
	cursor    time.Time
	segments  []segment
	conflicts []string
}

func newPlaceState(tasks []domain.Task, start time.Time, blocked []domain.TimeBlock) *placeState {
	st := &placeState{
		tasks:     make(map[string]*domain.Task, len(tasks)),
		remaining: make(map[string]time.Duration, len(tasks)),
		blocks:    append([]domain.TimeBlock(nil), blocked...),
		cursor:    start,
	}
	sort.SliceStable(st.blocks, func(i, j int) bool { return st.blocks[i].Start.Before(st.blocks[j].Start) })

	owned := make([]domain.Task, len(tasks))
	copy(owned, tasks)
	for i := range owned {
		t := &owned[i]
		if t.Completed {
			continue
		}
		st.tasks[t.ID] = t
		st.order = append(st.order, t.ID)
		st.remaining[t.ID] = t.EstimatedDuration
	}
	return st
}

func (st *placeState) anyRemaining() bool {
	for _, r := range st.remaining {
		if r > 0 {
			return true
		}
	}
	return false
}

// selectNext ranks the live candidates by urgency and returns the first
// one whose placement would not push another task's critical deadline
// from feasible to infeasible. When every candidate is unsafe the most
// urgent one is chosen anyway; the resulting violation is flagged later.
func (st *placeState) selectNext() (string, bool) {
	var candidates []string
	for _, id := range st.order {
		if st.remaining[id] > 0 {
			if _, ok := st.tasks[id]; ok {
				candidates = append(candidates, id)
			}
		}
	}
	if len(candidates) == 0 {
		return "", false
	}

	scores := make(map[string]time.Duration, len(candidates))
	for _, id := range candidates {
		scores[id] = urgencyScore(st.tasks[id], st.remaining[id], st.cursor, st.blocks)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i]] < scores[candidates[j]]
	})

	for _, id := range candidates {
		if st.safe(id) {
			return id, true
		}
	}
	return candidates[0], true
}

// safe reports whether finishing the candidate's remaining work first
// leaves every other critical deadline feasible. A deadline is critical
// when it is external, or when it is a user deadline whose slack after
// the candidate finishes falls below that task's own remaining work.
func (st *placeState) safe(candidate string) bool {
	finish := completionAt(st.cursor, st.remaining[candidate], st.blocks)

	for _, id := range st.order {
		if id == candidate || st.remaining[id] <= 0 {
			continue
		}
		other := st.tasks[id]
		deadline := other.EffectiveDeadline()
		if deadline == nil {
			continue
		}

		afterCandidate := completionAt(finish, st.remaining[id], st.blocks)

		critical := other.DeadlineExternal != nil
		if !critical {
			critical = deadline.Sub(afterCandidate) < st.remaining[id]
		}
		if !critical {
			continue
		}

		feasibleNow := !completionAt(st.cursor, st.remaining[id], st.blocks).After(*deadline)
		if feasibleNow && afterCandidate.After(*deadline) {
			return false
		}
	}
	return true
}

// placeSegment records one contiguous interval of work for the task:
// from the first free instant at or after the cursor up to either the
// next blocked interval or the exhaustion of the task's remaining
// duration, whichever comes first.
func (st *placeState) placeSegment(id string) {
	free := skipBlocked(st.cursor, st.blocks)
	end := free.Add(st.remaining[id])
	if next := nextBlockStart(free, st.blocks); next != nil && next.Before(end) {
		end = *next
	}

	st.segments = append(st.segments, segment{taskID: id, start: free, end: end})
	st.remaining[id] -= end.Sub(free)
	st.cursor = end
}

func (st *placeState) stallConflict() string {
	var left []string
	for id, r := range st.remaining {
		if r <= 0 {
			continue
		}
		if t, ok := st.tasks[id]; ok {
			left = append(left, domain.CoalesceStr(t.Title, id))
		} else {
			left = append(left, id)
		}
	}
	sort.Strings(left)
	return fmt.Sprintf("Scheduling stopped early: no task could be selected with %d unplaced: %s",
		len(left), joinTitles(left))
}

func joinTitles(titles []string) string {
	out := ""
	for i, t := range titles {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", t)
	}
	return out
}

// finalize groups raw segments per task, derives violation flags from
// each task's final completion instant, and attaches split metadata only
// when a task occupies more than one segment.
func (st *placeState) finalize() (PlacementResult, error) {
	perTask := make(map[string][]segment)
	var taskOrder []string
	for _, s := range st.segments {
		if _, seen := perTask[s.taskID]; !seen {
			taskOrder = append(taskOrder, s.taskID)
		}
		perTask[s.taskID] = append(perTask[s.taskID], s)
	}

	type taskMeta struct {
		total          int
		violatesUser   bool
		violatesExtern bool
	}
	meta := make(map[string]taskMeta, len(perTask))
	for _, id := range taskOrder {
		segs := perTask[id]
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].start.Before(segs[j].start) })
		task := st.tasks[id]
		completion := segs[len(segs)-1].end
		meta[id] = taskMeta{
			total:          len(segs),
			violatesUser:   task.DeadlineUser != nil && completion.After(*task.DeadlineUser),
			violatesExtern: task.DeadlineExternal != nil && completion.After(*task.DeadlineExternal),
		}
	}

	result := PlacementResult{Blocked: st.blocks, Conflicts: st.conflicts}
	indexSeen := make(map[string]int, len(perTask))
	for _, s := range st.segments {
		m := meta[s.taskID]
		indexSeen[s.taskID]++

		placed := domain.ScheduledTask{
			Task:                     st.tasks[s.taskID],
			Start:                    s.start,
			End:                      s.end,
			ViolatesDeadlineUser:     m.violatesUser,
			ViolatesDeadlineExternal: m.violatesExtern,
		}
		if m.total > 1 {
			placed.IsSegment = true
			placed.SegmentIndex = indexSeen[s.taskID]
			placed.TotalSegments = m.total
		}
		validated, err := domain.NewScheduledTask(placed)
		if err != nil {
			return PlacementResult{}, fmt.Errorf("building scheduled task: %w", err)
		}
		result.Scheduled = append(result.Scheduled, *validated)
	}

	for _, id := range taskOrder {
		segs := perTask[id]
		task := st.tasks[id]
		completion := segs[len(segs)-1].end
		if meta[id].violatesUser {
			result.Conflicts = append(result.Conflicts, deadlineConflict(task.Title, completion, "user", *task.DeadlineUser))
		}
		if meta[id].violatesExtern {
			result.Conflicts = append(result.Conflicts, deadlineConflict(task.Title, completion, "external", *task.DeadlineExternal))
		}
	}

	return result, nil
}

func deadlineConflict(title string, completion time.Time, kind string, deadline time.Time) string {
	return fmt.Sprintf("Task %q ends at %s but %s deadline is %s",
		title, completion.Format(conflictTimeLayout), kind, deadline.Format(conflictTimeLayout))
}
