package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/todo/internal/todo"
)

func TestInsert_AssignsIDsInOrder(t *testing.T) {
	s := createTestStore(t)

	ids := seedTitles(t, s, "buy milk", "walk dog")
	assert.Equal(t, []int64{1, 2}, ids)

	all, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{
		{ID: 1, Title: "buy milk", Done: false},
		{ID: 2, Title: "walk dog", Done: false},
	}, all)
}

func TestInsert_DuplicateTitle(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	seedTitles(t, s, "buy milk")

	_, err := s.Insert(ctx, "buy milk")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTitle)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{{ID: 1, Title: "buy milk"}}, all)
}

func TestInsert_DuplicateLeavesExistingRowUnchanged(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	seedTitles(t, s, "milk")

	_, err := s.ToggleDoneByID(ctx, 1)
	require.NoError(t, err)

	_, err = s.Insert(ctx, "milk")
	require.ErrorIs(t, err, ErrDuplicateTitle)

	got, err := s.ByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, todo.Todo{ID: 1, Title: "milk", Done: true}, got)
}

func TestInsert_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	seedTitles(t, s, "a", "b")

	_, err := s.DeleteByID(ctx, 2)
	require.NoError(t, err)

	id, err := s.Insert(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	seedTitles(t, s, "a", "b")

	n, err := s.DeleteByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{{ID: 2, Title: "b"}}, all)
}

func TestDeleteByTitle(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	seedTitles(t, s, "a", "b")

	n, err := s.DeleteByTitle(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDelete_MissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	seedTitles(t, s, "a")

	n, err := s.DeleteByID(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.DeleteByTitle(ctx, "A")
	require.NoError(t, err)
	assert.Zero(t, n, "title match is exact")

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestToggleDone_FlipsAndRestores(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	seedTitles(t, s, "milk", "eggs")

	n, err := s.ToggleDoneByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.ByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Done)

	_, err = s.ToggleDoneByTitle(ctx, "milk")
	require.NoError(t, err)

	got, err = s.ByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got.Done)

	other, err := s.ByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, other.Done, "toggle must only touch the addressed row")
}

func TestToggleDone_MissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)
	seedTitles(t, s, "milk")

	n, err := s.ToggleDoneByID(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = s.ToggleDoneByTitle(ctx, "bread")
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []todo.Todo{{ID: 1, Title: "milk"}}, all)
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	assert.False(t, isUniqueViolation(context.Canceled))
}
