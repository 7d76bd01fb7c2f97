package util

// CEFR 等级
var Levels = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

func IsValidLevel(level string) bool {
	for _, l := range Levels {
		if l == level {
			return true
		}
	}
	return false
}

const QuestionTypeMultipleChoice = "multiple-choice"
