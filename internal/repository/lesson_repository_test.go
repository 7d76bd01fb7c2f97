package repository

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()

	first := seedLesson(t, db, "First")
	second := seedLesson(t, db, "Second")

	lessons, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.ElementsMatch(t, []string{"First", "Second"}, []string{lessons[0].Title, lessons[1].Title})

	second.Title = "Second, revised"
	second.Level = "B1"
	require.NoError(t, repo.Update(ctx, second))
	found, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Second, revised", found.Title)
	assert.Equal(t, "B1", found.Level)

	ok, err := repo.Exists(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLessonRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "amy")
	lesson := seedLesson(t, db, "Doomed")
	keep := seedLesson(t, db, "Kept")

	vocab := NewVocabularyRepository(db)
	require.NoError(t, vocab.Create(ctx, &model.Vocabulary{Word: "hello", Meaning: "greeting", LessonID: lesson.ID}))
	require.NoError(t, vocab.Create(ctx, &model.Vocabulary{Word: "bye", Meaning: "farewell", LessonID: keep.ID}))

	quiz := seedQuiz(t, db, lesson.ID, 2)
	keptQuiz := seedQuiz(t, db, keep.ID, 1)
	seedResult(t, db, user.ID, quiz.ID, 50, time.Now())
	seedResult(t, db, user.ID, keptQuiz.ID, 100, time.Now())

	progress := NewProgressRepository(db)
	_, err := progress.Upsert(ctx, &model.Progress{UserID: user.ID, LessonID: lesson.ID, Progress: 20})
	require.NoError(t, err)
	_, err = progress.Upsert(ctx, &model.Progress{UserID: user.ID, LessonID: keep.ID, Progress: 80})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, lesson.ID))
	assert.ErrorIs(t, repo.Delete(ctx, lesson.ID), util.ErrNotFound)

	_, err = repo.FindByID(ctx, lesson.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.Zero(t, countRows(t, db, &model.Quiz{}, "lesson_id = ?", lesson.ID))
	assert.Zero(t, countRows(t, db, &model.Question{}, "quiz_id = ?", quiz.ID))
	assert.Zero(t, countRows(t, db, &model.QuizResult{}, "quiz_id = ?", quiz.ID))
	assert.Zero(t, countRows(t, db, &model.Vocabulary{}, "lesson_id = ?", lesson.ID))
	assert.Zero(t, countRows(t, db, &model.Progress{}, "lesson_id = ?", lesson.ID))

	// 其他课程的数据保留
	assert.EqualValues(t, 1, countRows(t, db, &model.Vocabulary{}, "lesson_id = ?", keep.ID))
	assert.EqualValues(t, 1, countRows(t, db, &model.Question{}, "quiz_id = ?", keptQuiz.ID))
	assert.EqualValues(t, 2, countRows(t, db, &model.Answer{}, ""))
	assert.EqualValues(t, 1, countRows(t, db, &model.QuizResult{}, ""))
	assert.EqualValues(t, 1, countRows(t, db, &model.Progress{}, ""))
}

func TestVocabularyRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewVocabularyRepository(db)
	ctx := context.Background()
	lesson := seedLesson(t, db, "Words")

	apple := &model.Vocabulary{Word: "apple", Meaning: "fruit", LessonID: lesson.ID}
	require.NoError(t, repo.Create(ctx, apple))
	require.NoError(t, repo.Create(ctx, &model.Vocabulary{Word: "pear", Meaning: "fruit", LessonID: lesson.ID}))

	items, err := repo.ListByLesson(ctx, lesson.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "apple", items[0].Word)

	require.NoError(t, repo.Delete(ctx, apple.ID))
	assert.ErrorIs(t, repo.Delete(ctx, apple.ID), util.ErrNotFound)
}
