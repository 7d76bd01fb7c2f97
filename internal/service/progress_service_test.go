package service

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/repository/memory"
	"english_station_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProgressFixture() (*ProgressService, *memory.ProgressStore) {
	progress := memory.NewProgressStore()
	users := memory.NewUserStore(model.User{UUIDBase: model.UUIDBase{ID: "u1"}, Email: "a@b.c", Username: "amy"})
	return NewProgressService(progress, memory.NewLessonStore(1, 2), users), progress
}

func TestProgressUpsert_SecondCallOverwrites(t *testing.T) {
	svc, store := newProgressFixture()
	ctx := context.Background()

	first, created, err := svc.Upsert(ctx, ProgressInput{UserID: "u1", LessonID: 1, Progress: 40})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Upsert(ctx, ProgressInput{UserID: "u1", LessonID: 1, Progress: 100, Completed: true})
	require.NoError(t, err)
	assert.False(t, created)

	assert.Len(t, store.Rows, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 100, store.Rows[first.ID].Progress)
	assert.True(t, store.Rows[first.ID].Completed)
}

func TestProgressUpsert_CompletedWithZeroAccepted(t *testing.T) {
	svc, _ := newProgressFixture()

	p, _, err := svc.Upsert(context.Background(), ProgressInput{UserID: "u1", LessonID: 2, Completed: true})
	require.NoError(t, err)
	assert.True(t, p.Completed)
	assert.Equal(t, 0, p.Progress)
}

func TestProgressUpsert_Validation(t *testing.T) {
	svc, store := newProgressFixture()
	ctx := context.Background()

	cases := []ProgressInput{
		{UserID: "u1", LessonID: 1, Progress: 101},
		{UserID: "u1", LessonID: 1, Progress: -1},
		{UserID: "", LessonID: 1},
		{UserID: "u1", LessonID: 99},
		{UserID: "ghost", LessonID: 1},
	}
	for _, in := range cases {
		_, _, err := svc.Upsert(ctx, in)
		assert.ErrorIs(t, err, util.ErrInvalidInput, "%+v", in)
	}
	assert.Empty(t, store.Rows)
}

func TestProgress_ListAndDelete(t *testing.T) {
	svc, _ := newProgressFixture()
	ctx := context.Background()

	p, _, err := svc.Upsert(ctx, ProgressInput{UserID: "u1", LessonID: 1, Progress: 10})
	require.NoError(t, err)
	_, _, err = svc.Upsert(ctx, ProgressInput{UserID: "u1", LessonID: 2, Progress: 20})
	require.NoError(t, err)

	byUser, err := svc.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, byUser, 2)

	byLesson, err := svc.ListByLesson(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, byLesson, 1)

	require.NoError(t, svc.Delete(ctx, p.ID))
	assert.ErrorIs(t, svc.Delete(ctx, p.ID), util.ErrNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
