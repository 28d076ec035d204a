package goal

import (
	"context"

	"github.com/lifetracker/lifetracker-api/internal/store"
)

type Repository interface {
	Create(ctx context.Context, g *FitnessGoal) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*FitnessGoal, error)
	ListByUser(ctx context.Context, userID string, f ListFilter, limit, offset int) ([]FitnessGoal, int64, error)
	Upsert(ctx context.Context, g *FitnessGoal) error
	Delete(ctx context.Context, id, userID string) error
}

type repository struct {
	container store.Container
}

func NewRepository(client store.Client) Repository {
	return &repository{container: client.Container(Collection, PartitionField)}
}

func (r *repository) Create(ctx context.Context, g *FitnessGoal) error {
	return r.container.Create(ctx, g)
}

func (r *repository) FindByIDAndUser(ctx context.Context, id, userID string) (*FitnessGoal, error) {
	q := store.NewQuery().
		Where("_id", store.OpEq, id).
		Where(PartitionField, store.OpEq, userID)

	var matches []FitnessGoal
	if err := r.container.Query(ctx, q, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// ListByUser issues count and page queries concurrently, ordered by
// creation time descending.
func (r *repository) ListByUser(ctx context.Context, userID string, f ListFilter, limit, offset int) ([]FitnessGoal, int64, error) {
	filtered := func() *store.Query {
		q := store.NewQuery().Where(PartitionField, store.OpEq, userID)
		switch f.Status {
		case StatusAchieved:
			q.Where("achieved", store.OpEq, true)
		case StatusActive:
			q.Where("achieved", store.OpEq, false)
		}
		return q
	}

	var (
		items []FitnessGoal
		total int64
	)
	errs := make(chan error, 2)
	go func() {
		q := filtered().OrderBy("createdAt", true).Page(limit, offset)
		errs <- r.container.Query(ctx, q, &items)
	}()
	go func() {
		count, err := r.container.Count(ctx, filtered())
		total = count
		errs <- err
	}()
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			return nil, 0, err
		}
	}
	return items, total, nil
}

func (r *repository) Upsert(ctx context.Context, g *FitnessGoal) error {
	return r.container.Upsert(ctx, g.ID, g)
}

func (r *repository) Delete(ctx context.Context, id, userID string) error {
	return r.container.Delete(ctx, id, userID)
}
