package cli

import (
	"context"
	"testing"

	"tasker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand_Execute(t *testing.T) {
	app, tasks, _, _ := setupTestApp()
	cmd := NewAddCommand(app)
	ctx := context.Background()

	t.Run("adds task with defaults", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"Buy", "milk"}, AddOptions{})
		require.NoError(t, err)

		all := tasks.Tasks()
		require.Len(t, all, 1)
		assert.Equal(t, "Buy milk", all[0].Title)
		assert.Equal(t, domain.PriorityMedium, all[0].Priority)
		assert.Equal(t, domain.FallbackCategory, all[0].Category)
		assert.False(t, all[0].IsOutdoor)
	})

	t.Run("applies flags", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"Mow lawn"}, AddOptions{
			Description: "front and back",
			Priority:    "high",
			Category:    "Outdoor",
			Outdoor:     true,
		})
		require.NoError(t, err)

		var found *domain.Task
		for _, task := range tasks.Tasks() {
			if task.Title == "Mow lawn" {
				copied := task
				found = &copied
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, "front and back", found.Description)
		assert.Equal(t, domain.PriorityHigh, found.Priority)
		assert.Equal(t, "Outdoor", found.Category)
		assert.True(t, found.IsOutdoor)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"Task"}, AddOptions{Priority: "urgent"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid priority")
	})

	t.Run("rejects missing title", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{}, AddOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage")
	})

	t.Run("surfaces validation errors", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"   "}, AddOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to add task")
	})
}

func TestAddCommand_RequiresSession(t *testing.T) {
	app, tasks := setupLoggedOutApp()
	cmd := NewAddCommand(app)

	err := cmd.Execute(context.Background(), []string{"Buy milk"}, AddOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Empty(t, tasks.Tasks())
}
