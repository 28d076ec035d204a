package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lifetracker/lifetracker-api/internal/blob"
	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrForbidden marks an authenticated caller acting on another
	// identity's profile; maps to 403.
	ErrForbidden = errors.New("forbidden")
)

type Service interface {
	Create(ctx context.Context, callerID string, dto CreateProfileDTO) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, id, callerID string, dto UpdateProfileDTO) (*Profile, error)
	Delete(ctx context.Context, id, callerID string) (bool, error)
	UploadAvatar(ctx context.Context, id, callerID, contentType string, data []byte) (*Profile, error)
}

type service struct {
	repo     Repository
	uploader blob.Uploader
}

func NewService(repo Repository, uploader blob.Uploader) Service {
	return &service{repo: repo, uploader: uploader}
}

// Create stores the caller's own profile. The profile id is always the
// caller identity, never taken from the payload.
func (s *service) Create(ctx context.Context, callerID string, dto CreateProfileDTO) (*Profile, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if dto.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	existing, err := s.repo.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: profile already exists", ErrInvalidInput)
	}

	prefs := Preferences{Theme: "light", Notifications: true}
	if dto.Preferences != nil {
		prefs = *dto.Preferences
	}

	now := time.Now().UTC()
	p := &Profile{
		ID:          callerID,
		Name:        dto.Name,
		Email:       dto.Email,
		Bio:         dto.Bio,
		Preferences: prefs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		log.WithError(err).Error("Failed to create profile")
		return nil, err
	}

	log.WithField("profile_id", p.ID).Info("Profile created")
	return p, nil
}

// GetByID serves both self and public lookups, so it carries no
// ownership check.
func (s *service) GetByID(ctx context.Context, id string) (*Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id, callerID string, dto UpdateProfileDTO) (*Profile, error) {
	log := config.WithContext(ctx)

	if id != callerID {
		return nil, ErrForbidden
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if dto.Name != nil {
		if *dto.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		existing.Name = *dto.Name
	}
	if dto.Email != nil {
		if *dto.Email == "" {
			return nil, fmt.Errorf("%w: email must not be empty", ErrInvalidInput)
		}
		existing.Email = *dto.Email
	}
	if dto.Bio != nil {
		existing.Bio = *dto.Bio
	}
	if dto.Preferences != nil {
		existing.Preferences = *dto.Preferences
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update profile")
		return nil, err
	}
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id, callerID string) (bool, error) {
	log := config.WithContext(ctx)

	if id != callerID {
		return false, ErrForbidden
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		log.WithError(err).Error("Failed to delete profile")
		return false, err
	}
	return true, nil
}

// UploadAvatar stores the image through the blob collaborator and
// persists only the returned URL.
func (s *service) UploadAvatar(ctx context.Context, id, callerID, contentType string, data []byte) (*Profile, error) {
	log := config.WithContext(ctx)

	if id != callerID {
		return nil, ErrForbidden
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: avatar body is empty", ErrInvalidInput)
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	url, err := s.uploader.Upload(ctx, id, data, contentType)
	if err != nil {
		log.WithError(err).Error("Failed to upload avatar")
		return nil, err
	}

	existing.AvatarURL = url
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to persist avatar URL")
		return nil, err
	}
	return existing, nil
}
