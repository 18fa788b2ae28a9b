package cli

import (
	"context"
	"testing"

	"tasker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoneCommand_Execute(t *testing.T) {
	app, tasks, _, _ := setupTestApp()
	cmd := NewDoneCommand(app)
	ctx := context.Background()

	task, err := tasks.AddTask(ctx, "Buy milk", "", "", "", false)
	require.NoError(t, err)

	t.Run("toggles completion", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{"1"}))
		assert.True(t, tasks.tasks[task.ID].Completed)

		require.NoError(t, cmd.Execute(ctx, []string{"1"}))
		assert.False(t, tasks.tasks[task.ID].Completed)
	})

	t.Run("rejects non-numeric id", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"abc"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid task id")
	})

	t.Run("unknown id is not an error", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, []string{"999"}))
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage")
	})
}

func TestRemoveCommand_Execute(t *testing.T) {
	app, tasks, _, _ := setupTestApp()
	cmd := NewRemoveCommand(app)
	ctx := context.Background()

	task, err := tasks.AddTask(ctx, "Buy milk", "", "", "", false)
	require.NoError(t, err)

	t.Run("removes existing task", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{"1"}))
		_, exists := tasks.tasks[task.ID]
		assert.False(t, exists)
	})

	t.Run("unknown id is not an error", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, []string{"999"}))
	})
}

func TestEditCommand_Execute(t *testing.T) {
	app, tasks, _, _ := setupTestApp()
	cmd := NewEditCommand(app)
	ctx := context.Background()

	_, err := tasks.AddTask(ctx, "Water plants", "", "", "", false)
	require.NoError(t, err)

	t.Run("changes only passed fields", func(t *testing.T) {
		title := "Water garden"
		outdoor := true
		err := cmd.Execute(ctx, []string{"1"}, EditOptions{Title: &title, Outdoor: &outdoor})
		require.NoError(t, err)

		task := tasks.tasks[1]
		assert.Equal(t, "Water garden", task.Title)
		assert.True(t, task.IsOutdoor)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
	})

	t.Run("rejects empty edit", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"1"}, EditOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to change")
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		bad := "urgent"
		err := cmd.Execute(ctx, []string{"1"}, EditOptions{Priority: &bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid priority")
	})
}

func TestPriorityCommand_Execute(t *testing.T) {
	app, tasks, _, _ := setupTestApp()
	cmd := NewPriorityCommand(app)
	ctx := context.Background()

	_, err := tasks.AddTask(ctx, "Buy milk", "", "", "", false)
	require.NoError(t, err)

	t.Run("sets priority", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{"1", "high"}))
		assert.Equal(t, domain.PriorityHigh, tasks.tasks[1].Priority)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"1", "urgent"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid priority")
	})

	t.Run("rejects wrong arity", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{"1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage")
	})
}

func TestCategoryCommand_Execute(t *testing.T) {
	app, tasks, _, _ := setupTestApp()
	cmd := NewCategoryCommand(app)
	ctx := context.Background()

	t.Run("adds category", func(t *testing.T) {
		require.NoError(t, cmd.ExecuteAdd(ctx, []string{"Errands"}))
		assert.Contains(t, tasks.Categories(), "Errands")
	})

	t.Run("adding twice is not an error", func(t *testing.T) {
		assert.NoError(t, cmd.ExecuteAdd(ctx, []string{"Errands"}))
	})

	t.Run("removal reassigns tasks to fallback", func(t *testing.T) {
		_, err := tasks.AddTask(ctx, "Post letter", "", "", "Errands", false)
		require.NoError(t, err)

		require.NoError(t, cmd.ExecuteRemove(ctx, []string{"Errands"}))

		assert.NotContains(t, tasks.Categories(), "Errands")
		for _, task := range tasks.Tasks() {
			assert.NotEqual(t, "Errands", task.Category)
		}
	})

	t.Run("refuses to remove built-in category", func(t *testing.T) {
		err := cmd.ExecuteRemove(ctx, []string{"Work"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "built-in")
	})

	t.Run("removing unknown category is not an error", func(t *testing.T) {
		assert.NoError(t, cmd.ExecuteRemove(ctx, []string{"Nonexistent"}))
	})

	t.Run("lists categories", func(t *testing.T) {
		assert.NoError(t, cmd.ExecuteList(ctx))
	})
}

func TestCommandsRequireSession(t *testing.T) {
	app, _ := setupLoggedOutApp()
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "done", run: func() error { return NewDoneCommand(app).Execute(ctx, []string{"1"}) }},
		{name: "rm", run: func() error { return NewRemoveCommand(app).Execute(ctx, []string{"1"}) }},
		{name: "edit", run: func() error {
			title := "x"
			return NewEditCommand(app).Execute(ctx, []string{"1"}, EditOptions{Title: &title})
		}},
		{name: "priority", run: func() error { return NewPriorityCommand(app).Execute(ctx, []string{"1", "high"}) }},
		{name: "category add", run: func() error { return NewCategoryCommand(app).ExecuteAdd(ctx, []string{"X"}) }},
		{name: "weather", run: func() error { return NewWeatherCommand(app).Execute(ctx, nil) }},
		{name: "location update", run: func() error { return NewLocationCommand(app).ExecuteUpdate(ctx) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not logged in")
		})
	}
}
