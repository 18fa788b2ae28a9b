// Package query derives the visible task list from the full task collection
// and the current view criteria. Apply is a pure function: it never mutates
// its input and yields identical output for identical inputs.
package query

import (
	"sort"
	"strings"

	"tasker/internal/domain"
)

// StatusFilter selects tasks by completion state
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// SortKey selects the ordering of the derived view
type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByPriority   SortKey = "priority"
	SortByCategory   SortKey = "category"
	SortByCompletion SortKey = "completion"
)

// CategoryAll is the wildcard category filter
const CategoryAll = "all"

// Criteria describes the current view over the task collection. The zero
// value selects every task sorted by date.
type Criteria struct {
	Status      StatusFilter
	Search      string
	Category    string
	OutdoorOnly bool
	SortBy      SortKey
}

// Apply filters and sorts tasks according to the criteria and returns a new
// slice. A task passes only if it satisfies every active criterion.
func Apply(tasks []domain.Task, c Criteria) []domain.Task {
	result := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if matches(task, c) {
			result = append(result, task)
		}
	}

	sortTasks(result, c.SortBy)
	return result
}

// matches reports whether a task satisfies all active criteria
func matches(task domain.Task, c Criteria) bool {
	switch c.Status {
	case StatusActive:
		if task.Completed {
			return false
		}
	case StatusCompleted:
		if !task.Completed {
			return false
		}
	}

	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(task.Title), needle) &&
			!strings.Contains(strings.ToLower(task.Description), needle) &&
			!strings.Contains(strings.ToLower(task.Category), needle) {
			return false
		}
	}

	if c.Category != "" && c.Category != CategoryAll && task.Category != c.Category {
		return false
	}

	if c.OutdoorOnly && !task.IsOutdoor {
		return false
	}

	return true
}

// sortTasks orders tasks in place by the given key. Every ordering ends in a
// deterministic tie-break so the view is reproducible.
func sortTasks(tasks []domain.Task, key SortKey) {
	switch key {
	case SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].Priority.Rank() != tasks[j].Priority.Rank() {
				return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
			}
			return tasks[i].ID > tasks[j].ID
		})
	case SortByCategory:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Category < tasks[j].Category
		})
	case SortByCompletion:
		sort.SliceStable(tasks, func(i, j int) bool {
			if tasks[i].Completed != tasks[j].Completed {
				return !tasks[i].Completed
			}
			return tasks[i].ID > tasks[j].ID
		})
	default:
		// Date order: newest first. Ids derive from creation time.
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].ID > tasks[j].ID
		})
	}
}
