package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	task := NewTask("Buy milk")

	assert.Equal(t, "Buy milk", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, FallbackCategory, task.Category)
	assert.False(t, task.IsOutdoor)
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		task  Task
		valid bool
	}{
		{
			name:  "valid task",
			task:  Task{Title: "Buy milk", Priority: PriorityLow, Category: "Shopping"},
			valid: true,
		},
		{
			name:  "empty title",
			task:  Task{Priority: PriorityLow, Category: "Shopping"},
			valid: false,
		},
		{
			name:  "unknown priority",
			task:  Task{Title: "Buy milk", Priority: "urgent", Category: "Shopping"},
			valid: false,
		},
		{
			name:  "empty category",
			task:  Task{Title: "Buy milk", Priority: PriorityLow},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.task.IsValid())
		})
	}
}

func TestTaskUpdate_Apply(t *testing.T) {
	original := Task{
		ID:       1,
		Title:    "Water plants",
		Priority: PriorityMedium,
		Category: "Personal",
	}

	title := "Water garden"
	outdoor := true
	updated := TaskUpdate{Title: &title, IsOutdoor: &outdoor}.Apply(original)

	assert.Equal(t, "Water garden", updated.Title)
	assert.True(t, updated.IsOutdoor)
	// Untouched fields survive the merge
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.Priority, updated.Priority)
	assert.Equal(t, original.Category, updated.Category)
}

func TestTaskUpdate_ApplyEmptyUpdateIsNoOp(t *testing.T) {
	original := Task{ID: 7, Title: "Pay rent", Completed: true, Priority: PriorityHigh, Category: "Personal"}

	assert.Equal(t, original, TaskUpdate{}.Apply(original))
}
