package model

// swagger:model Lesson
type Lesson struct {
	BaseModel
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Content     string       `gorm:"type:text;not null" json:"content"`
	Level       string       `gorm:"size:2;index" json:"level"`
	Vocabulary  []Vocabulary `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"vocabulary,omitempty"`
	Quizzes     []Quiz       `gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE" json:"quizzes,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// swagger:model Vocabulary
type Vocabulary struct {
	BaseModel
	Word     string `gorm:"size:255;not null" json:"word"`
	Meaning  string `gorm:"type:text;not null" json:"meaning"`
	Example  string `gorm:"type:text" json:"example"`
	LessonID uint   `gorm:"index;not null" json:"lessonId"`
}

func (Vocabulary) TableName() string {
	return "vocabulary"
}
