package profile

import (
	"context"

	"github.com/lifetracker/lifetracker-api/internal/store"
)

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	container store.Container
}

func NewRepository(client store.Client) Repository {
	return &repository{container: client.Container(Collection, PartitionField)}
}

func (r *repository) Create(ctx context.Context, p *Profile) error {
	return r.container.Create(ctx, p)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Profile, error) {
	q := store.NewQuery().Where("_id", store.OpEq, id)

	var matches []Profile
	if err := r.container.Query(ctx, q, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return &matches[0], nil
}

func (r *repository) Upsert(ctx context.Context, p *Profile) error {
	return r.container.Upsert(ctx, p.ID, p)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	// The profile's partition key is its own id.
	return r.container.Delete(ctx, id, id)
}
