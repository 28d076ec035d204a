package journal

import (
	"context"

	"github.com/lifetracker/lifetracker-api/internal/store"
)

type Repository interface {
	Create(ctx context.Context, e *JournalEntry) error
	FindByIDAndUser(ctx context.Context, id, userID string) (*JournalEntry, error)
	ListByUser(ctx context.Context, userID string, f ListFilter, limit, offset int) ([]JournalEntry, int64, error)
	Upsert(ctx context.Context, e *JournalEntry) error
	Delete(ctx context.Context, id, userID string) error
}

type repository struct {
	container store.Container
}

func NewRepository(client store.Client) Repository {
	return &repository{container: client.Container(Collection, PartitionField)}
}

func (r *repository) Create(ctx context.Context, e *JournalEntry) error {
	return r.container.Create(ctx, e)
}

func (r *repository) FindByIDAndUser(ctx context.Context, id, userID string) (*JournalEntry, error) {
	q := store.NewQuery().
		Where("_id", store.OpEq, id).
		Where(PartitionField, store.OpEq, userID)

	var matches []JournalEntry
	if err := r.container.Query(ctx, q, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

// ListByUser issues count and page queries concurrently, ordered by
// entry date descending.
func (r *repository) ListByUser(ctx context.Context, userID string, f ListFilter, limit, offset int) ([]JournalEntry, int64, error) {
	filtered := func() *store.Query {
		q := store.NewQuery().Where(PartitionField, store.OpEq, userID)
		if f.Mood != "" {
			q.Where("mood", store.OpEq, f.Mood)
		}
		if f.From != nil {
			q.Where("date", store.OpGte, *f.From)
		}
		if f.To != nil {
			q.Where("date", store.OpLte, *f.To)
		}
		return q
	}

	var (
		items []JournalEntry
		total int64
	)
	errs := make(chan error, 2)
	go func() {
		q := filtered().OrderBy("date", true).Page(limit, offset)
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

func (r *repository) Upsert(ctx context.Context, e *JournalEntry) error {
	return r.container.Upsert(ctx, e.ID, e)
}

func (r *repository) Delete(ctx context.Context, id, userID string) error {
	return r.container.Delete(ctx, id, userID)
}
