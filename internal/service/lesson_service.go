package service

import (
	"context"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"strings"
)

type LessonService struct {
	LessonRepo     LessonStore
	VocabularyRepo VocabularyStore
}

func NewLessonService(lessonRepo LessonStore, vocabularyRepo VocabularyStore) *LessonService {
	return &LessonService{
		LessonRepo:     lessonRepo,
		VocabularyRepo: vocabularyRepo,
	}
}

type LessonInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
	Level       string `json:"level" binding:"required"`
}

type VocabularyInput struct {
	Word    string `json:"word" binding:"required"`
	Meaning string `json:"meaning" binding:"required"`
	Example string `json:"example"`
}

func (in LessonInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return util.Invalid("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return util.Invalid("content is required")
	}
	if !util.IsValidLevel(in.Level) {
		return util.Invalid("level must be one of %s", strings.Join(util.Levels, ", "))
	}
	return nil
}

func (s *LessonService) List(ctx context.Context) ([]model.Lesson, error) {
	return s.LessonRepo.List(ctx)
}

func (s *LessonService) Get(ctx context.Context, id uint) (*model.Lesson, error) {
	return s.LessonRepo.FindByID(ctx, id)
}

func (s *LessonService) Create(ctx context.Context, input LessonInput) (*model.Lesson, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Content:     input.Content,
		Level:       input.Level,
	}
	if err := s.LessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Update(ctx context.Context, id uint, input LessonInput) (*model.Lesson, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	lesson, err := s.LessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lesson.Title = strings.TrimSpace(input.Title)
	lesson.Description = input.Description
	lesson.Content = input.Content
	lesson.Level = input.Level
	if err := s.LessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// Delete 级联删除课程下的词汇、测验与进度
func (s *LessonService) Delete(ctx context.Context, id uint) error {
	return s.LessonRepo.Delete(ctx, id)
}

func (s *LessonService) ListVocabulary(ctx context.Context, lessonID uint) ([]model.Vocabulary, error) {
	if err := s.ensureLesson(ctx, lessonID); err != nil {
		return nil, err
	}
	return s.VocabularyRepo.ListByLesson(ctx, lessonID)
}

func (s *LessonService) AddVocabulary(ctx context.Context, lessonID uint, input VocabularyInput) (*model.Vocabulary, error) {
	if strings.TrimSpace(input.Word) == "" || strings.TrimSpace(input.Meaning) == "" {
		return nil, util.Invalid("word and meaning are required")
	}
	if err := s.ensureLesson(ctx, lessonID); err != nil {
		return nil, err
	}

	item := &model.Vocabulary{
		Word:     strings.TrimSpace(input.Word),
		Meaning:  input.Meaning,
		Example:  input.Example,
		LessonID: lessonID,
	}
	if err := s.VocabularyRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *LessonService) DeleteVocabulary(ctx context.Context, id uint) error {
	return s.VocabularyRepo.Delete(ctx, id)
}

func (s *LessonService) ensureLesson(ctx context.Context, id uint) error {
	exists, err := s.LessonRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrNotFound
	}
	return nil
}
