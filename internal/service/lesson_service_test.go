package service

import (
	"context"
	"english_station_backend/internal/repository/memory"
	"english_station_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonService_CRUD(t *testing.T) {
	svc := NewLessonService(memory.NewLessonStore(), memory.NewVocabularyStore())
	ctx := context.Background()

	lesson, err := svc.Create(ctx, LessonInput{Title: " Greetings ", Content: "Hello!", Level: "A1"})
	require.NoError(t, err)
	assert.Equal(t, "Greetings", lesson.Title)

	updated, err := svc.Update(ctx, lesson.ID, LessonInput{Title: "Greetings", Content: "Hi!", Level: "A2"})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Level)

	got, err := svc.Get(ctx, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi!", got.Content)

	require.NoError(t, svc.Delete(ctx, lesson.ID))
	_, err = svc.Get(ctx, lesson.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestLessonService_RejectsUnknownLevel(t *testing.T) {
	svc := NewLessonService(memory.NewLessonStore(), memory.NewVocabularyStore())

	_, err := svc.Create(context.Background(), LessonInput{Title: "T", Content: "C", Level: "D1"})
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestLessonService_UpdateMissing(t *testing.T) {
	svc := NewLessonService(memory.NewLessonStore(), memory.NewVocabularyStore())

	_, err := svc.Update(context.Background(), 9, LessonInput{Title: "T", Content: "C", Level: "B1"})
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestLessonService_Vocabulary(t *testing.T) {
	svc := NewLessonService(memory.NewLessonStore(1), memory.NewVocabularyStore())
	ctx := context.Background()

	item, err := svc.AddVocabulary(ctx, 1, VocabularyInput{Word: "apple", Meaning: "a fruit", Example: "I eat an apple."})
	require.NoError(t, err)
	assert.Equal(t, uint(1), item.LessonID)

	items, err := svc.ListVocabulary(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.AddVocabulary(ctx, 2, VocabularyInput{Word: "pear", Meaning: "a fruit"})
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = svc.ListVocabulary(ctx, 2)
	assert.ErrorIs(t, err, util.ErrNotFound)

	require.NoError(t, svc.DeleteVocabulary(ctx, item.ID))
	assert.ErrorIs(t, svc.DeleteVocabulary(ctx, item.ID), util.ErrNotFound)
}
