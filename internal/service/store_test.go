package service

import (
	"english_station_backend/internal/repository"
	"english_station_backend/internal/repository/memory"
)

var (
	_ LessonStore     = (*repository.LessonRepository)(nil)
	_ VocabularyStore = (*repository.VocabularyRepository)(nil)
	_ QuizStore       = (*repository.QuizRepository)(nil)
	_ QuizResultStore = (*repository.QuizResultRepository)(nil)
	_ ProgressStore   = (*repository.ProgressRepository)(nil)
	_ UserStore       = (*repository.UserRepository)(nil)
	_ SettingStore    = (*repository.SettingRepository)(nil)
	_ SettingCache    = (*repository.SettingCache)(nil)

	_ LessonStore     = (*memory.LessonStore)(nil)
	_ VocabularyStore = (*memory.VocabularyStore)(nil)
	_ QuizStore       = (*memory.QuizStore)(nil)
	_ QuizResultStore = (*memory.QuizResultStore)(nil)
	_ ProgressStore   = (*memory.ProgressStore)(nil)
	_ UserStore       = (*memory.UserStore)(nil)
	_ SettingStore    = (*memory.SettingStore)(nil)
	_ SettingCache    = (*memory.SettingCache)(nil)
)
