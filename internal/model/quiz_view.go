package model

import "time"

// QuizView 学习者答题时看到的测验，不包含正确答案
type QuizView struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	LessonID    uint           `json:"lessonId"`
	TimeLimit   *int           `json:"timeLimit"`
	Lesson      *Lesson        `json:"lesson,omitempty"`
	Questions   []QuestionView `json:"questions"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type QuestionView struct {
	ID      uint         `json:"id"`
	Content string       `json:"content"`
	Type    string       `json:"type"`
	Order   int          `json:"order"`
	Answers []AnswerView `json:"answers"`
}

type AnswerView struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

func (q *Quiz) LearnerView() QuizView {
	view := QuizView{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		LessonID:    q.LessonID,
		TimeLimit:   q.TimeLimit,
		Lesson:      q.Lesson,
		Questions:   make([]QuestionView, 0, len(q.Questions)),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	for _, question := range q.Questions {
		qv := QuestionView{
			ID:      question.ID,
			Content: question.Content,
			Type:    question.Type,
			Order:   question.Order,
			Answers: make([]AnswerView, 0, len(question.Answers)),
		}
		for _, a := range question.Answers {
			qv.Answers = append(qv.Answers, AnswerView{ID: a.ID, Content: a.Content})
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}
