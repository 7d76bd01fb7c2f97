package repository

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProgressRepository_UpsertCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "amy")
	lesson := seedLesson(t, db, "Basics")

	first := &model.Progress{UserID: user.ID, LessonID: lesson.ID, Progress: 30}
	created, err := repo.Upsert(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotEmpty(t, first.ID)

	second := &model.Progress{UserID: user.ID, LessonID: lesson.ID, Progress: 100, Completed: true}
	created, err = repo.Upsert(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	assert.EqualValues(t, 1, countRows(t, db, &model.Progress{}, ""))
	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, found.Progress)
	assert.True(t, found.Completed)

	rows, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	rows, err = repo.ListByLesson(ctx, lesson.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

// 在首次插入前写入同一 (user_id, lesson_id) 的行，模拟并发请求抢先插入
func TestProgressRepository_UpsertRetriesDuplicateKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	user := seedUser(t, db, "amy")
	lesson := seedLesson(t, db, "Basics")

	fired := 0
	err := db.Callback().Create().Before("gorm:create").Register("test:concurrent_progress", func(tx *gorm.DB) {
		if tx.Statement.Table != "progress" || fired > 0 {
			return
		}
		fired++
		now := time.Now()
		_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
			"INSERT INTO progress (id, user_id, lesson_id, completed, progress, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			model.GenerateUUID(), user.ID, lesson.ID, false, 10, now, now)
		require.NoError(t, err)
	})
	require.NoError(t, err)

	p := &model.Progress{UserID: user.ID, LessonID: lesson.ID, Progress: 60}
	_, err = repo.Upsert(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, fired)
	assert.NotEmpty(t, p.ID)

	var rows []model.Progress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 60, rows[0].Progress)
}

func TestProgressRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "amy")
	lesson := seedLesson(t, db, "Basics")

	p := &model.Progress{UserID: user.ID, LessonID: lesson.ID, Progress: 30}
	_, err := repo.Upsert(ctx, p)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, p.ID))
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), util.ErrNotFound)
	_, err = repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)
}
