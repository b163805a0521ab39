package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplan/internal/domain"
	"tripplan/internal/service"
	"tripplan/internal/store"
)

func newChecklistService(t *testing.T) *service.ChecklistService {
	t.Helper()
	return service.NewChecklistService(store.NewMemory())
}

func TestChecklistService_List_SeedsDefaults(t *testing.T) {
	svc := newChecklistService(t)

	items := svc.List(context.Background())

	require.Len(t, items, 4)
	assert.Equal(t, "Passport", items[0].Text)
	for _, item := range items {
		assert.False(t, item.Done)
	}
}

func TestChecklistService_Add(t *testing.T) {
	svc := newChecklistService(t)

	item, err := svc.Add(context.Background(), "  Travel insurance  ")

	require.NoError(t, err)
	assert.Equal(t, "Travel insurance", item.Text)
	assert.False(t, item.Done)

	items := svc.List(context.Background())
	assert.Equal(t, "Travel insurance", items[len(items)-1].Text)
}

func TestChecklistService_Add_EmptyRejected(t *testing.T) {
	svc := newChecklistService(t)

	_, err := svc.Add(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChecklistService_SetDone(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()

	item, err := svc.SetDone(ctx, 0, true)
	require.NoError(t, err)
	assert.True(t, item.Done)

	item, err = svc.SetDone(ctx, 0, false)
	require.NoError(t, err)
	assert.False(t, item.Done)
}

func TestChecklistService_SetDone_OutOfRange(t *testing.T) {
	svc := newChecklistService(t)

	_, err := svc.SetDone(context.Background(), 99, true)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChecklistService_Delete(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 0))

	items := svc.List(ctx)
	require.Len(t, items, 3)
	assert.Equal(t, "eSIM (Ubigi)", items[0].Text)
}

func TestChecklistService_Clear_RemovesEverything(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	_, err := svc.SetDone(ctx, 0, true)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))

	// Clear drops done and not-done items alike.
	assert.Empty(t, svc.List(ctx))
}
