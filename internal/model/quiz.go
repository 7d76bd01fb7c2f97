package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	LessonID    uint       `gorm:"index;not null" json:"lessonId"`
	TimeLimit   *int       `json:"timeLimit"` // 秒，为空表示不限时
	Lesson      *Lesson    `gorm:"foreignKey:LessonID" json:"lesson,omitempty"`
	Questions   []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	ID      uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Content string   `gorm:"type:text;not null" json:"content"`
	QuizID  uint     `gorm:"index;not null" json:"quizId"`
	Type    string   `gorm:"size:50;not null" json:"type"`
	Order   int      `gorm:"default:0" json:"order"`
	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Answer
type Answer struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Content    string `gorm:"type:text;not null" json:"content"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"isCorrect"`
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
}

func (Answer) TableName() string {
	return "answers"
}

// CorrectAnswer 返回题目中第一个标记为正确的答案，没有时返回 nil
func (q *Question) CorrectAnswer() *Answer {
	for i := range q.Answers {
		if q.Answers[i].IsCorrect {
			return &q.Answers[i]
		}
	}
	return nil
}
