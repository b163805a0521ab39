package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplan/internal/domain"
	"tripplan/internal/service"
	"tripplan/internal/store"
)

func newNoteService(t *testing.T) *service.NoteService {
	t.Helper()
	return service.NewNoteService(store.NewMemory())
}

func TestNoteService_Add_PrependsNewestFirst(t *testing.T) {
	svc := newNoteService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "First", "", "body one")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Second", "food", "body two")
	require.NoError(t, err)

	notes := svc.List(ctx)
	require.Len(t, notes, 2)
	assert.Equal(t, "Second", notes[0].Title)
	assert.Equal(t, "First", notes[1].Title)
}

func TestNoteService_Add_SetsTimestamp(t *testing.T) {
	svc := newNoteService(t)
	before := time.Now().UnixMilli()

	n, err := svc.Add(context.Background(), "Title", "", "")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, n.TS, before)
}

func TestNoteService_Add_TitleOrBodyRequired(t *testing.T) {
	svc := newNoteService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, "  ", "tag", "  ")
	assert.ErrorIs(t, err, domain.ErrValidation, "a tag alone is not a note")

	_, err = svc.Add(ctx, "", "", "just a body")
	assert.NoError(t, err)
}

func TestNoteService_Update_RefreshesTimestamp(t *testing.T) {
	svc := newNoteService(t)
	ctx := context.Background()
	n, err := svc.Add(ctx, "Old", "", "text")
	require.NoError(t, err)

	got, err := svc.Update(ctx, 0, "New", "tag", "edited")

	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.GreaterOrEqual(t, got.TS, n.TS)
}

func TestNoteService_Update_OutOfRange(t *testing.T) {
	svc := newNoteService(t)

	_, err := svc.Update(context.Background(), 0, "X", "", "Y")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteService_Delete(t *testing.T) {
	svc := newNoteService(t)
	ctx := context.Background()
	_, err := svc.Add(ctx, "Keep", "", "a")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Drop", "", "b")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 0)) // newest first, so index 0 is "Drop"

	notes := svc.List(ctx)
	require.Len(t, notes, 1)
	assert.Equal(t, "Keep", notes[0].Title)

	assert.ErrorIs(t, svc.Delete(ctx, 9), domain.ErrNotFound)
}
