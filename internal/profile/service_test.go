package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifetracker/lifetracker-api/internal/blob"
	"github.com/lifetracker/lifetracker-api/internal/profile"
	"github.com/lifetracker/lifetracker-api/internal/store"
)

func newService() profile.Service {
	client := store.NewMemoryClient()
	return profile.NewService(profile.NewRepository(client), blob.NewLocalUploader(""))
}

func ptr[T any](v T) *T { return &v }

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("IDIsCallerIdentity", func(t *testing.T) {
		svc := newService()

		p, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "u1", p.ID)
		assert.Equal(t, "light", p.Preferences.Theme)
		assert.True(t, p.Preferences.Notifications)
	})

	t.Run("DuplicateRejected", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex again", Email: "alex@example.com"})
		assert.ErrorIs(t, err, profile.ErrInvalidInput)
	})

	t.Run("ExplicitPreferencesKept", func(t *testing.T) {
		svc := newService()

		p, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{
			Name:        "Alex",
			Email:       "alex@example.com",
			Preferences: &profile.Preferences{Theme: "dark", Notifications: false},
		})
		require.NoError(t, err)
		assert.Equal(t, "dark", p.Preferences.Theme)
		assert.False(t, p.Preferences.Notifications)
	})

	t.Run("RejectsMissingFields", func(t *testing.T) {
		svc := newService()

		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex"})
		assert.ErrorIs(t, err, profile.ErrInvalidInput)
	})
}

func TestReadProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("AnyUserCanRead", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com"})
		require.NoError(t, err)

		got, err := svc.GetByID(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Alex", got.Name)
	})

	t.Run("MissingProfileIsNil", func(t *testing.T) {
		svc := newService()

		got, err := svc.GetByID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnerMergesFields", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com", Bio: "runner"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, "u1", "u1", profile.UpdateProfileDTO{Name: ptr("Alexis")})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Alexis", updated.Name)
		assert.Equal(t, "runner", updated.Bio)
	})

	t.Run("OtherCallerForbidden", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, "u1", "u2", profile.UpdateProfileDTO{Name: ptr("Mallory")})
		assert.ErrorIs(t, err, profile.ErrForbidden)
	})
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnerDeletes", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com"})
		require.NoError(t, err)

		deleted, err := svc.Delete(ctx, "u1", "u1")
		require.NoError(t, err)
		assert.True(t, deleted)

		got, err := svc.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("OtherCallerForbidden", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com"})
		require.NoError(t, err)

		_, err = svc.Delete(ctx, "u1", "u2")
		assert.ErrorIs(t, err, profile.ErrForbidden)
	})
}

func TestUploadAvatar(t *testing.T) {
	ctx := context.Background()

	t.Run("PersistsURL", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com"})
		require.NoError(t, err)

		updated, err := svc.UploadAvatar(ctx, "u1", "u1", "image/png", []byte{0x89, 0x50})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.NotEmpty(t, updated.AvatarURL)

		got, err := svc.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, updated.AvatarURL, got.AvatarURL)
	})

	t.Run("EmptyBodyRejected", func(t *testing.T) {
		svc := newService()
		_, err := svc.Create(ctx, "u1", profile.CreateProfileDTO{Name: "Alex", Email: "alex@example.com"})
		require.NoError(t, err)

		_, err = svc.UploadAvatar(ctx, "u1", "u1", "image/png", nil)
		assert.ErrorIs(t, err, profile.ErrInvalidInput)
	})
}
