package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizResult 存储用户的测验结果，创建后不再修改
type QuizResult struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string         `gorm:"type:varchar(36);index;not null" json:"userId"`
	QuizID    uint           `gorm:"index;not null" json:"quizId"`
	Score     int            `gorm:"not null" json:"score"`
	Answers   datatypes.JSON `gorm:"not null" json:"answers"` // 提交的原始答案
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	User      *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Quiz      *Quiz          `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"quiz,omitempty"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

func (r *QuizResult) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = GenerateUUID()
	}
	return
}

// SubmittedAnswer 学习者对某道题的选择
type SubmittedAnswer struct {
	QuestionID uint `json:"questionId"`
	AnswerID   uint `json:"answerId"`
}
