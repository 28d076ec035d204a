package goal

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

var ErrInvalidInput = errors.New("invalid input")

type Service interface {
	Create(ctx context.Context, userID string, dto CreateGoalDTO) (*FitnessGoal, error)
	GetByID(ctx context.Context, id, userID string) (*FitnessGoal, error)
	List(ctx context.Context, userID string, f ListFilter, p pagination.Params) (*ListGoalsResponse, error)
	Update(ctx context.Context, id, userID string, dto UpdateGoalDTO) (*FitnessGoal, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, dto CreateGoalDTO) (*FitnessGoal, error) {
	log := config.WithContext(ctx)

	if dto.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if dto.TargetDate == "" {
		return nil, fmt.Errorf("%w: targetDate is required", ErrInvalidInput)
	}
	targetDate, err := util.ParseDate(dto.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	progress := 0
	if dto.Progress != nil {
		if *dto.Progress < 0 || *dto.Progress > 100 {
			return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
		}
		progress = *dto.Progress
	}

	now := time.Now().UTC()
	g := &FitnessGoal{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      dto.Title,
		TargetDate: targetDate,
		Notes:      dto.Notes,
		Achieved:   false,
		Progress:   progress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created")
	return g, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*FitnessGoal, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

func (s *service) List(ctx context.Context, userID string, f ListFilter, p pagination.Params) (*ListGoalsResponse, error) {
	log := config.WithContext(ctx)

	if f.Status != "" && f.Status != StatusAchieved && f.Status != StatusActive {
		return nil, fmt.Errorf("%w: status must be %q or %q", ErrInvalidInput, StatusAchieved, StatusActive)
	}

	items, total, err := s.repo.ListByUser(ctx, userID, f, p.Limit, p.Offset)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}
	if items == nil {
		items = []FitnessGoal{}
	}

	return &ListGoalsResponse{
		Items:  items,
		Total:  total,
		Limit:  p.Limit,
		Offset: p.Offset,
	}, nil
}

func (s *service) Update(ctx context.Context, id, userID string, dto UpdateGoalDTO) (*FitnessGoal, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if dto.Title != nil {
		if *dto.Title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrInvalidInput)
		}
		existing.Title = *dto.Title
	}
	if dto.TargetDate != nil {
		targetDate, err := util.ParseDate(*dto.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		existing.TargetDate = targetDate
	}
	if dto.Notes != nil {
		existing.Notes = *dto.Notes
	}
	if dto.Achieved != nil {
		existing.Achieved = *dto.Achieved
	}
	if dto.Progress != nil {
		if *dto.Progress < 0 || *dto.Progress > 100 {
			return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
		}
		existing.Progress = *dto.Progress
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Upsert(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}
	return existing, nil
}

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
		log.WithError(err).Error("Failed to delete goal")
		return false, err
	}
	return true, nil
}
