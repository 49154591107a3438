package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusValid(t *testing.T) {
	assert.True(t, StatusDone.Valid())
	assert.True(t, StatusBlocked.Valid())
	assert.False(t, TaskStatus("finished").Valid())
	assert.False(t, TaskStatus("").Valid())
}

func TestTaskPriorityValid(t *testing.T) {
	assert.True(t, PriorityCritical.Valid())
	assert.False(t, TaskPriority("Urgent").Valid())
}

func TestTaskCompletionTime(t *testing.T) {
	created := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	updated := created.AddDate(0, 0, 5)
	completed := created.AddDate(0, 0, 3)

	full := Task{CreatedAt: created, UpdatedAt: &updated, CompletedAt: &completed}
	assert.Equal(t, completed, full.CompletionTime())

	noCompleted := Task{CreatedAt: created, UpdatedAt: &updated}
	assert.Equal(t, updated, noCompleted.CompletionTime())

	bare := Task{CreatedAt: created}
	assert.Equal(t, created, bare.CompletionTime())
}
