package scheduler

import (
	"sort"
	"time"

	"github.com/lmartens/dayflow/internal/domain"
)

// ProjectTasks is one project's task list with its identity, as produced
// by the sync collaborator.
type ProjectTasks struct {
	Project    string
	DocumentID string
	Tasks      []domain.Task
}

// Prioritize flattens per-project task lists into one globally ordered
// sequence usable as scheduling priority. Incomplete tasks come first in
// three tiers (external deadline, user deadline only, no deadline),
// followed by completed tasks. Tasks missing a project label are returned
// with the label filled in from their owning list; the input is never
// mutated.
func Prioritize(lists []ProjectTasks) []domain.Task {
	var pool []domain.Task
	for _, list := range lists {
		for _, t := range list.Tasks {
			t.Project = domain.CoalesceStr(t.Project, list.Project)
			pool = append(pool, t)
		}
	}

	var hard, soft, loose, doneValid, doneBare []domain.Task
	for _, t := range pool {
		switch {
		case t.Completed && t.EstimatedDuration > 0:
			doneValid = append(doneValid, t)
		case t.Completed:
			doneBare = append(doneBare, t)
		case t.DeadlineExternal != nil:
			hard = append(hard, t)
		case t.DeadlineUser != nil:
			soft = append(soft, t)
		default:
			loose = append(loose, t)
		}
	}

	sortByDeadline(hard, func(t *domain.Task) *time.Time { return t.DeadlineExternal })
	sortByDeadline(soft, func(t *domain.Task) *time.Time { return t.DeadlineUser })
	sort.SliceStable(loose, func(i, j int) bool {
		if loose[i].EstimatedDuration != loose[j].EstimatedDuration {
			return loose[i].EstimatedDuration < loose[j].EstimatedDuration
		}
		return loose[i].Title < loose[j].Title
	})
	sortCompleted(doneValid)
	sort.SliceStable(doneBare, func(i, j int) bool { return doneBare[i].Title < doneBare[j].Title })

	ordered := make([]domain.Task, 0, len(pool))
	ordered = append(ordered, hard...)
	ordered = append(ordered, soft...)
	ordered = append(ordered, loose...)
	ordered = append(ordered, doneValid...)
	ordered = append(ordered, doneBare...)
	return ordered
}

// sortByDeadline orders a tier by (deadline, duration, title) ascending.
// Every task in the tier is guaranteed to carry the keyed deadline.
func sortByDeadline(tier []domain.Task, key func(*domain.Task) *time.Time) {
	sort.SliceStable(tier, func(i, j int) bool {
		a, b := key(&tier[i]), key(&tier[j])
		if !a.Equal(*b) {
			return a.Before(*b)
		}
		if tier[i].EstimatedDuration != tier[j].EstimatedDuration {
			return tier[i].EstimatedDuration < tier[j].EstimatedDuration
		}
		return tier[i].Title < tier[j].Title
	})
}

// sortCompleted orders finished tasks by (duration, effective deadline,
// title); absent deadlines sort last.
func sortCompleted(tier []domain.Task) {
	sort.SliceStable(tier, func(i, j int) bool {
		if tier[i].EstimatedDuration != tier[j].EstimatedDuration {
			return tier[i].EstimatedDuration < tier[j].EstimatedDuration
		}
		a, b := tier[i].EffectiveDeadline(), tier[j].EffectiveDeadline()
		if (a == nil) != (b == nil) {
			return a != nil
		}
		if a != nil && b != nil && !a.Equal(*b) {
			return a.Before(*b)
		}
		return tier[i].Title < tier[j].Title
	})
}
