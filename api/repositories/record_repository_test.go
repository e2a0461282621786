package repositories

import (
	"context"
	"errors"
	"fitconsole/pkg/kv"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

func (brokenStore) Set(context.Context, string, any) error { return errors.New("store down") }
func (brokenStore) GetByPrefix(context.Context, string) ([]kv.Entry, error) {
	return nil, errors.New("store down")
}

func TestNewRepositories(t *testing.T) {
	store := kv.NewMemoryStore()
	assert.NotNil(t, NewMemberRepository(store, nil))
	assert.NotNil(t, NewPaymentRepository(store, logger.Nop{}))
	assert.NotNil(t, NewAccessLogRepository(store, nil))
}

// Records come back in creation order even when keys sort differently.
func TestListSortsByCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	repo := NewMemberRepository(store, nil)

	members := []models.Member{
		{ID: "member:3", Name: "c", CreatedAt: "2026-10-19T09:00:00.000Z"},
		{ID: "member:1_0.9", Name: "a", CreatedAt: "2026-10-19T11:00:00.000Z"},
		{ID: "member:2", Name: "b", CreatedAt: "2026-10-19T10:00:00.000Z"},
		{ID: "member:1_0.1", Name: "d", CreatedAt: "2026-10-19T11:00:00.000Z"},
	}
	for _, m := range members {
		require.NoError(t, repo.Save(ctx, m))
	}

	result, err := repo.List(ctx)
	require.NoError(t, err)

	names := make([]string, len(result))
	for i, m := range result {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"c", "b", "d", "a"}, names)
}

func TestListOnlyOwnKind(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()

	require.NoError(t, NewPaymentRepository(store, nil).Save(ctx, models.Payment{ID: "payment:1", Amount: 59000}))
	require.NoError(t, NewAccessLogRepository(store, nil).Save(ctx, models.AccessLog{ID: "access:1"}))

	payments, err := NewPaymentRepository(store, nil).List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, int64(59000), payments[0].Amount)

	members, err := NewMemberRepository(store, nil).List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestListSkipsUndecodable(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "member:1", map[string]any{"id": "member:1", "name": "ok"}))
	require.NoError(t, store.Set(ctx, "member:2", []int{1, 2, 3}))

	members, err := NewMemberRepository(store, nil).List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "ok", members[0].Name)
}

func TestStoreErrors(t *testing.T) {
	repo := NewAccessLogRepository(brokenStore{}, nil)

	_, err := repo.List(context.Background())
	assert.ErrorContains(t, err, "store down")

	err = repo.Save(context.Background(), models.AccessLog{ID: "access:1"})
	assert.ErrorContains(t, err, "access:1")
}
