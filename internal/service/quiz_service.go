package service

import (
	"bytes"
	"context"
	"encoding/json"
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
	"english_station_backend/pkg/logger"
	"english_station_backend/pkg/monitoring"
	"english_station_backend/pkg/tracing"
	"errors"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type QuizService struct {
	QuizRepo   QuizStore
	ResultRepo QuizResultStore
	LessonRepo LessonStore
}

func NewQuizService(quizRepo QuizStore, resultRepo QuizResultStore, lessonRepo LessonStore) *QuizService {
	return &QuizService{
		QuizRepo:   quizRepo,
		ResultRepo: resultRepo,
		LessonRepo: lessonRepo,
	}
}

type AnswerInput struct {
	Content   string `json:"content"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionInput struct {
	Content string        `json:"content"`
	Type    string        `json:"type"`
	Answers []AnswerInput `json:"answers"`
}

type QuizInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	LessonID    uint            `json:"lessonId" binding:"required"`
	TimeLimit   *int            `json:"timeLimit"`
	Questions   []QuestionInput `json:"questions"`
}

type SubmitRequest struct {
	UserID  string          `json:"userId"`
	Answers json.RawMessage `json:"answers" swaggertype:"array,object"`
}

type SubmitResult struct {
	Score          int               `json:"score"`
	TotalQuestions int               `json:"totalQuestions"`
	CorrectAnswers int               `json:"correctAnswers"`
	QuizResult     *model.QuizResult `json:"quizResult"`
}

func (s *QuizService) List(ctx context.Context) ([]model.QuizView, error) {
	quizzes, err := s.QuizRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.QuizView, 0, len(quizzes))
	for i := range quizzes {
		views = append(views, quizzes[i].LearnerView())
	}
	return views, nil
}

// Get 返回学习者视图，不暴露正确答案
func (s *QuizService) Get(ctx context.Context, id uint) (*model.QuizView, error) {
	quiz, err := s.QuizRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := quiz.LearnerView()
	return &view, nil
}

// GetForAdmin 返回包含 isCorrect 的完整测验，供后台编辑
func (s *QuizService) GetForAdmin(ctx context.Context, id uint) (*model.Quiz, error) {
	return s.QuizRepo.FindByID(ctx, id)
}

func (s *QuizService) Create(ctx context.Context, input QuizInput) (*model.Quiz, error) {
	quiz, err := s.buildQuiz(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := s.QuizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return s.QuizRepo.FindByID(ctx, quiz.ID)
}

// Update 整体替换题目与答案
func (s *QuizService) Update(ctx context.Context, id uint, input QuizInput) (*model.Quiz, error) {
	if _, err := s.QuizRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	quiz, err := s.buildQuiz(ctx, input)
	if err != nil {
		return nil, err
	}
	quiz.ID = id
	if err := s.QuizRepo.Replace(ctx, quiz); err != nil {
		return nil, err
	}
	return s.QuizRepo.FindByID(ctx, id)
}

func (s *QuizService) Delete(ctx context.Context, id uint) error {
	return s.QuizRepo.Delete(ctx, id)
}

func (s *QuizService) buildQuiz(ctx context.Context, input QuizInput) (*model.Quiz, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, util.Invalid("title is required")
	}
	if input.TimeLimit != nil && *input.TimeLimit <= 0 {
		return nil, util.Invalid("timeLimit must be positive")
	}
	if len(input.Questions) == 0 {
		return nil, util.Invalid("quiz must have at least one question")
	}

	exists, err := s.LessonRepo.Exists(ctx, input.LessonID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.Invalid("lesson %d does not exist", input.LessonID)
	}

	quiz := &model.Quiz{
		Title:       title,
		Description: input.Description,
		LessonID:    input.LessonID,
		TimeLimit:   input.TimeLimit,
		Questions:   make([]model.Question, 0, len(input.Questions)),
	}

	for i, q := range input.Questions {
		if strings.TrimSpace(q.Content) == "" {
			return nil, util.Invalid("question %d: content is required", i+1)
		}
		if len(q.Answers) < 2 {
			return nil, util.Invalid("question %d: at least two answers are required", i+1)
		}

		question := model.Question{
			Content: q.Content,
			Type:    q.Type,
			Order:   i,
			Answers: make([]model.Answer, 0, len(q.Answers)),
		}
		if question.Type == "" {
			question.Type = util.QuestionTypeMultipleChoice
		}

		correct := 0
		for j, a := range q.Answers {
			if strings.TrimSpace(a.Content) == "" {
				return nil, util.Invalid("question %d answer %d: content is required", i+1, j+1)
			}
			if a.IsCorrect {
				correct++
			}
			question.Answers = append(question.Answers, model.Answer{Content: a.Content, IsCorrect: a.IsCorrect})
		}
		if correct != 1 {
			return nil, util.Invalid("question %d: exactly one correct answer is required", i+1)
		}

		quiz.Questions = append(quiz.Questions, question)
	}

	return quiz, nil
}

// Submit 评分并保存一条测验结果，每次调用都会新增记录
func (s *QuizService) Submit(ctx context.Context, quizID uint, req SubmitRequest) (*SubmitResult, error) {
	ctx, span := tracing.Start(ctx, "QuizService.Submit", attribute.Int("quiz.id", int(quizID)))
	defer span.End()

	if strings.TrimSpace(req.UserID) == "" {
		return nil, util.Invalid("userId is required")
	}
	answers, raw, err := decodeAnswers(req.Answers)
	if err != nil {
		return nil, err
	}

	quiz, err := s.QuizRepo.FindByID(ctx, quizID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			monitoring.ObserveSubmission(monitoring.OutcomeNotFound, 0)
		} else {
			monitoring.ObserveSubmission(monitoring.OutcomeFailed, 0)
			tracing.Fail(span, err)
		}
		return nil, err
	}

	total := len(quiz.Questions)
	correct := CountCorrect(quiz, answers)
	score, err := Score(correct, total)
	if err != nil {
		monitoring.ObserveSubmission(monitoring.OutcomeInvalidQuiz, 0)
		tracing.Fail(span, err)
		return nil, err
	}

	result := &model.QuizResult{
		UserID:  req.UserID,
		QuizID:  quiz.ID,
		Score:   score,
		Answers: raw,
	}
	if err := s.ResultRepo.Create(ctx, result); err != nil {
		monitoring.ObserveSubmission(monitoring.OutcomeFailed, 0)
		tracing.Fail(span, err)
		logger.Log.Error("Failed to save quiz result",
			zap.Uint("quizId", quizID),
			zap.String("userId", req.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	monitoring.ObserveSubmission(monitoring.OutcomeScored, score)
	span.SetAttributes(attribute.Int("quiz.score", score))
	logger.Log.Debug("Quiz submitted",
		zap.Uint("quizId", quizID),
		zap.String("userId", req.UserID),
		zap.Int("score", score),
	)

	return &SubmitResult{
		Score:          score,
		TotalQuestions: total,
		CorrectAnswers: correct,
		QuizResult:     result,
	}, nil
}

// decodeAnswers 解析提交的答案数组，同时保留原始 JSON 用于存档
func decodeAnswers(raw json.RawMessage) ([]model.SubmittedAnswer, datatypes.JSON, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, nil, util.Invalid("answers must be an array")
	}

	var answers []model.SubmittedAnswer
	if err := json.Unmarshal(trimmed, &answers); err != nil {
		return nil, nil, util.Invalid("malformed answers: %v", err)
	}
	return answers, datatypes.JSON(trimmed), nil
}

func (s *QuizService) Results(ctx context.Context, userID string) ([]model.QuizResult, error) {
	return s.ResultRepo.ListByUser(ctx, userID)
}
