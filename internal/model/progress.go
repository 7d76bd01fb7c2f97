package model

// Progress 每个用户每节课一条记录
// swagger:model Progress
type Progress struct {
	UUIDBase
	UserID    string  `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_user_lesson" json:"userId"`
	LessonID  uint    `gorm:"not null;uniqueIndex:idx_progress_user_lesson" json:"lessonId"`
	Completed bool    `gorm:"default:false" json:"completed"`
	Progress  int     `gorm:"default:0" json:"progress"` // 0-100
	User      *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Lesson    *Lesson `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"lesson,omitempty"`
}

func (Progress) TableName() string {
	return "progress"
}
