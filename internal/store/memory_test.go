package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifetracker/lifetracker-api/internal/store"
)

type record struct {
	ID     string    `bson:"_id"`
	UserID string    `bson:"userId"`
	Kind   string    `bson:"kind"`
	Score  int       `bson:"score"`
	Date   time.Time `bson:"date"`
}

func seedRecords(t *testing.T, c store.Container, records []record) {
	t.Helper()
	ctx := context.Background()
	for _, r := range records {
		require.NoError(t, c.Create(ctx, r))
	}
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryContainerQuery(t *testing.T) {
	ctx := context.Background()

	newContainer := func() store.Container {
		client := store.NewMemoryClient()
		c := client.Container("records", "userId")
		seedRecords(t, c, []record{
			{ID: "a", UserID: "u1", Kind: "run", Score: 10, Date: day(1)},
			{ID: "b", UserID: "u1", Kind: "swim", Score: 30, Date: day(3)},
			{ID: "c", UserID: "u1", Kind: "run", Score: 20, Date: day(2)},
			{ID: "d", UserID: "u2", Kind: "run", Score: 99, Date: day(4)},
		})
		return c
	}

	t.Run("FilterByOwner", func(t *testing.T) {
		c := newContainer()

		var out []record
		q := store.NewQuery().Where("userId", store.OpEq, "u1")
		require.NoError(t, c.Query(ctx, q, &out))
		assert.Len(t, out, 3)
		for _, r := range out {
			assert.Equal(t, "u1", r.UserID)
		}
	})

	t.Run("RangeFilterOnDate", func(t *testing.T) {
		c := newContainer()

		var out []record
		q := store.NewQuery().
			Where("userId", store.OpEq, "u1").
			Where("date", store.OpGte, day(2)).
			Where("date", store.OpLte, day(3))
		require.NoError(t, c.Query(ctx, q, &out))
		require.Len(t, out, 2)
	})

	t.Run("SortDescending", func(t *testing.T) {
		c := newContainer()

		var out []record
		q := store.NewQuery().
			Where("userId", store.OpEq, "u1").
			OrderBy("date", true)
		require.NoError(t, c.Query(ctx, q, &out))
		require.Len(t, out, 3)
		assert.Equal(t, []string{"b", "c", "a"}, []string{out[0].ID, out[1].ID, out[2].ID})
	})

	t.Run("PaginationNoGapsNoDuplicates", func(t *testing.T) {
		c := newContainer()

		seen := make(map[string]bool)
		for offset := 0; offset < 3; offset += 2 {
			var page []record
			q := store.NewQuery().
				Where("userId", store.OpEq, "u1").
				OrderBy("date", true).
				Page(2, offset)
			require.NoError(t, c.Query(ctx, q, &page))
			for _, r := range page {
				assert.False(t, seen[r.ID], "record %s returned twice", r.ID)
				seen[r.ID] = true
			}
		}
		assert.Len(t, seen, 3)
	})

	t.Run("OffsetBeyondEnd", func(t *testing.T) {
		c := newContainer()

		var out []record
		q := store.NewQuery().Where("userId", store.OpEq, "u1").Page(10, 50)
		require.NoError(t, c.Query(ctx, q, &out))
		assert.Empty(t, out)
	})

	t.Run("CountIgnoresPagination", func(t *testing.T) {
		c := newContainer()

		q := store.NewQuery().Where("userId", store.OpEq, "u1").Page(1, 0)
		total, err := c.Count(ctx, q)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}

func TestMemoryContainerMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("UpsertReplaces", func(t *testing.T) {
		client := store.NewMemoryClient()
		c := client.Container("records", "userId")
		seedRecords(t, c, []record{{ID: "a", UserID: "u1", Kind: "run", Score: 10, Date: day(1)}})

		require.NoError(t, c.Upsert(ctx, "a", record{ID: "a", UserID: "u1", Kind: "walk", Score: 5, Date: day(1)}))

		var out []record
		require.NoError(t, c.Query(ctx, store.NewQuery().Where("_id", store.OpEq, "a"), &out))
		require.Len(t, out, 1)
		assert.Equal(t, "walk", out[0].Kind)
	})

	t.Run("DeleteMissingReturnsNotFound", func(t *testing.T) {
		client := store.NewMemoryClient()
		c := client.Container("records", "userId")

		err := c.Delete(ctx, "nope", "u1")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("DeleteWrongPartitionReturnsNotFound", func(t *testing.T) {
		client := store.NewMemoryClient()
		c := client.Container("records", "userId")
		seedRecords(t, c, []record{{ID: "a", UserID: "u1", Kind: "run", Score: 10, Date: day(1)}})

		err := c.Delete(ctx, "a", "u2")
		assert.ErrorIs(t, err, store.ErrNotFound)

		var out []record
		require.NoError(t, c.Query(ctx, store.NewQuery().Where("_id", store.OpEq, "a"), &out))
		assert.Len(t, out, 1)
	})

	t.Run("ContainerHandleIsReused", func(t *testing.T) {
		client := store.NewMemoryClient()
		first := client.Container("records", "userId")
		seedRecords(t, first, []record{{ID: "a", UserID: "u1", Kind: "run", Score: 10, Date: day(1)}})

		second := client.Container("records", "userId")
		var out []record
		require.NoError(t, second.Query(ctx, store.NewQuery(), &out))
		assert.Len(t, out, 1)
	})
}

func TestConnectFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyURIFallsBack", func(t *testing.T) {
		client, err := store.Connect(ctx, "", "lifetracker", true)
		require.NoError(t, err)
		assert.Equal(t, "memory", client.Backend())
	})

	t.Run("EmptyURIWithoutFallbackFails", func(t *testing.T) {
		_, err := store.Connect(ctx, "", "lifetracker", false)
		assert.ErrorIs(t, err, store.ErrUnavailable)
	})
}
