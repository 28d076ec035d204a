package activity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/lifetracker-api/internal/config"
	"github.com/lifetracker/lifetracker-api/internal/pagination"
	"github.com/lifetracker/lifetracker-api/internal/store"
	util "github.com/lifetracker/lifetracker-api/internal/utils"
)

// ErrInvalidInput marks client-caused shape errors; the HTTP layer maps
// it to 400.
var ErrInvalidInput = errors.New("invalid input")

type Service interface {
	Create(ctx context.Context, userID string, dto CreateActivityDTO) (*Activity, error)
	GetByID(ctx context.Context, id, userID string) (*Activity, error)
	List(ctx context.Context, userID string, f ListFilter, p pagination.Params) (*ListActivitiesResponse, error)
	Update(ctx context.Context, id, userID string, dto UpdateActivityDTO) (*Activity, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, dto CreateActivityDTO) (*Activity, error) {
	log := config.WithContext(ctx)

	if dto.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if dto.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if dto.Calories < 0 {
		return nil, fmt.Errorf("%w: calories must not be negative", ErrInvalidInput)
	}
	if dto.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := util.ParseDate(dto.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := time.Now().UTC()
	a := &Activity{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      dto.Type,
		Duration:  dto.Duration,
		Calories:  dto.Calories,
		Date:      date,
		Notes:     dto.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		log.WithError(err).Error("Failed to create activity")
		return nil, err
	}

	log.WithField("activity_id", a.ID).Info("Activity created")
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*Activity, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *service) List(ctx context.Context, userID string, f ListFilter, p pagination.Params) (*ListActivitiesResponse, error) {
	log := config.WithContext(ctx)

	items, total, err := s.repo.ListByUser(ctx, userID, f, p.Limit, p.Offset)
	if err != nil {
		log.WithError(err).Error("Failed to list activities")
		return nil, err
	}
	if items == nil {
		items = []Activity{}
	}

	return &ListActivitiesResponse{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}, nil
}

// Update merges the partial payload over the stored record. The record
// id, owner and original creation time always survive the merge;
// UpdatedAt is refreshed. Concurrent updates are last-writer-wins.
func (s *service) Update(ctx context.Context, id, userID string, dto UpdateActivityDTO) (*Activity, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if dto.Type != nil {
		if *dto.Type == "" {
			return nil, fmt.Errorf("%w: type must not be empty", ErrInvalidInput)
		}
		existing.Type = *dto.Type
	}
	if dto.Duration != nil {
		if *dto.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
		existing.Duration = *dto.Duration
	}
	if dto.Calories != nil {
		if *dto.Calories < 0 {
			return nil, fmt.Errorf("%w: calories must not be negative", ErrInvalidInput)
		}
		existing.Calories = *dto.Calories
	}
	if dto.Date != nil {
		date, err := util.ParseDate(*dto.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		existing.Date = date
	}
	if dto.Notes != nil {
		existing.Notes = *dto.Notes
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update activity")
		return nil, err
	}
	return existing, nil
}

// Delete reports (false, nil) when the record is already gone or owned
// by someone else; storage failures are returned as errors.
func (s *service) Delete(ctx context.Context, id, userID string) (bool, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		log.WithError(err).Error("Failed to delete activity")
		return false, err
	}
	return true, nil
}
