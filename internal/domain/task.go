package domain

// Task represents a to-do item in the domain model.
// This is a pure domain model without storage-specific concerns.
// JSON tags match the persisted shape of the tasks collection.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	IsOutdoor   bool     `json:"isOutdoor"`
}

// NewTask creates a new Task with the given title and defaults applied:
// not completed, medium priority, the fallback category, not outdoor.
func NewTask(title string) Task {
	return Task{
		Title:    title,
		Priority: PriorityMedium,
		Category: FallbackCategory,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Title != "" && t.Priority.IsValid() && t.Category != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// TaskUpdate describes a partial update to a task. Nil fields are left
// untouched by the merge.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *Priority
	Category    *string
	IsOutdoor   *bool
}

// Apply merges the non-nil fields of the update into the task and returns
// the merged result.
func (u TaskUpdate) Apply(t Task) Task {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.IsOutdoor != nil {
		t.IsOutdoor = *u.IsOutdoor
	}
	return t
}
