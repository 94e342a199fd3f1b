package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRenderJobLifecycle(t *testing.T) {
	j := NewRenderJob("jane", "modern", "A4")
	assert.NotEqual(t, uuid.Nil, j.ID)
	assert.Equal(t, StatusPending, j.Status)
	assert.Equal(t, j.CreatedAt, j.UpdatedAt)

	j.Complete(2048, 1)
	assert.Equal(t, StatusCompleted, j.Status)
	assert.Equal(t, 2048, j.Bytes)
	assert.Equal(t, 1, j.Pages)
	assert.False(t, j.UpdatedAt.Before(j.CreatedAt))

	j.Fail(errors.New("chrome exited"))
	assert.Equal(t, StatusFailed, j.Status)
	assert.Equal(t, "chrome exited", j.Error)
}

func TestRenderJobIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewRenderJob("a", "", "").ID, NewRenderJob("a", "", "").ID)
}
