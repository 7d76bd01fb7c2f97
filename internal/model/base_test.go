package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreate_AssignsUUID(t *testing.T) {
	result := &QuizResult{}
	require.NoError(t, result.BeforeCreate(nil))
	_, err := uuid.Parse(result.ID)
	assert.NoError(t, err)

	user := &User{}
	require.NoError(t, user.BeforeCreate(nil))
	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, result.ID, user.ID)
}

func TestBeforeCreate_KeepsExistingID(t *testing.T) {
	result := &QuizResult{ID: "fixed"}
	require.NoError(t, result.BeforeCreate(nil))
	assert.Equal(t, "fixed", result.ID)
}
