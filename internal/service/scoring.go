package service

import (
	"english_station_backend/internal/model"
	"english_station_backend/internal/util"
)

// CountCorrect 统计答对的题数
// 每道题以第一个 isCorrect 答案为准，不属于该测验的题目被忽略
// 同一道题重复提交时只取第一次作答
func CountCorrect(quiz *model.Quiz, answers []model.SubmittedAnswer) int {
	correctByQuestion := make(map[uint]uint, len(quiz.Questions))
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if _, seen := correctByQuestion[q.ID]; seen {
			continue
		}
		if a := q.CorrectAnswer(); a != nil {
			correctByQuestion[q.ID] = a.ID
		} else {
			correctByQuestion[q.ID] = 0
		}
	}

	correct := 0
	answered := make(map[uint]bool, len(answers))
	for _, submitted := range answers {
		answerID, ok := correctByQuestion[submitted.QuestionID]
		if !ok || answered[submitted.QuestionID] {
			continue
		}
		answered[submitted.QuestionID] = true
		if answerID != 0 && submitted.AnswerID == answerID {
			correct++
		}
	}
	return correct
}

// Score 计算百分制得分，四舍五入（.5 进位）
func Score(correct, total int) (int, error) {
	if total <= 0 {
		return 0, util.ErrInvalidQuiz
	}
	if correct < 0 {
		correct = 0
	}
	if correct > total {
		correct = total
	}
	return (correct*200 + total) / (2 * total), nil
}
