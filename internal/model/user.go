package model

// swagger:model User
type User struct {
	UUIDBase
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password     string `gorm:"size:100;not null" json:"-"`
	RefreshToken string `gorm:"size:128;index" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"isAdmin"`
	Level        string `gorm:"size:2;default:'A1'" json:"level"`
	Progress     int    `gorm:"default:0" json:"progress"` // 已完成课程数
	Streak       int    `gorm:"default:0" json:"streak"`   // 连续学习天数
}

func (User) TableName() string {
	return "users"
}

// UserDetail 用户详情，附带学习进度与测验记录
type UserDetail struct {
	User
	LessonProgress []Progress   `json:"lessonProgress"`
	QuizResults    []QuizResult `json:"quizResults"`
}
