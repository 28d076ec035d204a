package goal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifetracker/lifetracker-api/internal/goal"
	"github.com/lifetracker/lifetracker-api/internal/pagination"
	"github.com/lifetracker/lifetracker-api/internal/store"
)

func newService() goal.Service {
	client := store.NewMemoryClient()
	return goal.NewService(goal.NewRepository(client))
}

func ptr[T any](v T) *T { return &v }

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToActiveZeroProgress", func(t *testing.T) {
		svc := newService()

		g, err := svc.Create(ctx, "u1", goal.CreateGoalDTO{Title: "Run a 10k", TargetDate: "2026-06-01"})
		require.NoError(t, err)
		assert.NotEmpty(t, g.ID)
		assert.False(t, g.Achieved)
		assert.Equal(t, 0, g.Progress)
		assert.Equal(t, g.CreatedAt, g.UpdatedAt)
	})

	t.Run("RejectsMissingTitle", func(t *testing.T) {
		svc := newService()

		_, err := svc.Create(ctx, "u1", goal.CreateGoalDTO{TargetDate: "2026-06-01"})
		assert.ErrorIs(t, err, goal.ErrInvalidInput)
	})

	t.Run("RejectsProgressOutOfRange", func(t *testing.T) {
		svc := newService()

		_, err := svc.Create(ctx, "u1", goal.CreateGoalDTO{Title: "Run a 10k", TargetDate: "2026-06-01", Progress: ptr(101)})
		assert.ErrorIs(t, err, goal.ErrInvalidInput)
	})
}

func TestListGoals(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc goal.Service) {
		t.Helper()
		first, err := svc.Create(ctx, "u1", goal.CreateGoalDTO{Title: "Run a 10k", TargetDate: "2026-06-01"})
		require.NoError(t, err)
		_, err = svc.Update(ctx, first.ID, "u1", goal.UpdateGoalDTO{Achieved: ptr(true), Progress: ptr(100)})
		require.NoError(t, err)
		_, err = svc.Create(ctx, "u1", goal.CreateGoalDTO{Title: "Swim weekly", TargetDate: "2026-12-31"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, "u2", goal.CreateGoalDTO{Title: "Someone else's goal", TargetDate: "2026-06-01"})
		require.NoError(t, err)
	}

	t.Run("AllForOwner", func(t *testing.T) {
		svc := newService()
		seed(t, svc)

		resp, err := svc.List(ctx, "u1", goal.ListFilter{}, pagination.Params{Limit: 50})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Total)
	})

	t.Run("StatusAchieved", func(t *testing.T) {
		svc := newService()
		seed(t, svc)

		resp, err := svc.List(ctx, "u1", goal.ListFilter{Status: goal.StatusAchieved}, pagination.Params{Limit: 50})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Run a 10k", resp.Items[0].Title)
	})

	t.Run("StatusActive", func(t *testing.T) {
		svc := newService()
		seed(t, svc)

		resp, err := svc.List(ctx, "u1", goal.ListFilter{Status: goal.StatusActive}, pagination.Params{Limit: 50})
		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Swim weekly", resp.Items[0].Title)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		svc := newService()

		_, err := svc.List(ctx, "u1", goal.ListFilter{Status: "done"}, pagination.Params{Limit: 50})
		assert.ErrorIs(t, err, goal.ErrInvalidInput)
	})
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("MarkAchievedKeepsOtherFields", func(t *testing.T) {
		svc := newService()
		created, err := svc.Create(ctx, "u1", goal.CreateGoalDTO{Title: "Run a 10k", TargetDate: "2026-06-01", Notes: "train twice a week"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, "u1", goal.UpdateGoalDTO{Achieved: ptr(true)})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.True(t, updated.Achieved)
		assert.Equal(t, "Run a 10k", updated.Title)
		assert.Equal(t, "train twice a week", updated.Notes)
	})

	t.Run("RejectsNegativeProgress", func(t *testing.T) {
		svc := newService()
		created, err := svc.Create(ctx, "u1", goal.CreateGoalDTO{Title: "Run a 10k", TargetDate: "2026-06-01"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID, "u1", goal.UpdateGoalDTO{Progress: ptr(-1)})
		assert.ErrorIs(t, err, goal.ErrInvalidInput)
	})

	t.Run("NotFoundForOtherUser", func(t *testing.T) {
		svc := newService()
		created, err := svc.Create(ctx, "u1", goal.CreateGoalDTO{Title: "Run a 10k", TargetDate: "2026-06-01"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, "u2", goal.UpdateGoalDTO{Achieved: ptr(true)})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestDeleteGoal(t *testing.T) {
	ctx := context.Background()

	t.Run("SecondDeleteReportsGone", func(t *testing.T) {
		svc := newService()
		created, err := svc.Create(ctx, "u1", goal.CreateGoalDTO{Title: "Run a 10k", TargetDate: "2026-06-01"})
		require.NoError(t, err)

		deleted, err := svc.Delete(ctx, created.ID, "u1")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = svc.Delete(ctx, created.ID, "u1")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
