package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectAnswer_FirstMarkedWins(t *testing.T) {
	q := Question{Answers: []Answer{
		{ID: 1, IsCorrect: false},
		{ID: 2, IsCorrect: true},
		{ID: 3, IsCorrect: true},
	}}

	a := q.CorrectAnswer()
	require.NotNil(t, a)
	assert.Equal(t, uint(2), a.ID)
}

func TestCorrectAnswer_NoneMarked(t *testing.T) {
	q := Question{Answers: []Answer{{ID: 1}, {ID: 2}}}
	assert.Nil(t, q.CorrectAnswer())
}

func TestLearnerView_HidesCorrectFlag(t *testing.T) {
	quiz := Quiz{
		Title: "Greetings",
		Questions: []Question{{
			ID:      1,
			Content: "Hello means?",
			Answers: []Answer{{ID: 1, Content: "hi", IsCorrect: true}, {ID: 2, Content: "bye"}},
		}},
	}

	data, err := json.Marshal(quiz.LearnerView())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "isCorrect")
	assert.Contains(t, string(data), `"content":"hi"`)
}
