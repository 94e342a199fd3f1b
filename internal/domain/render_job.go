package domain

import (
	"time"

	"github.com/google/uuid"
)

// Render job statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// RenderJob records one run of the resume pipeline.
type RenderJob struct {
	ID         uuid.UUID `json:"id"`
	ResumeName string    `json:"resume_name"`
	Status     string    `json:"status"`
	Theme      string    `json:"theme"`
	PageSize   string    `json:"page_size"`
	Bytes      int       `json:"bytes"`
	Pages      int       `json:"pages"`
	CacheHit   bool      `json:"cache_hit"`
	// Fallback is set when no stored record matched and the built-in default
	// was rendered instead.
	Fallback  bool      `json:"fallback"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRenderJob starts a pending job for name.
func NewRenderJob(name, theme, pageSize string) *RenderJob {
	now := time.Now().UTC()
	return &RenderJob{
		ID:         uuid.New(),
		ResumeName: name,
		Status:     StatusPending,
		Theme:      theme,
		PageSize:   pageSize,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Complete marks the job done with the size of the produced document.
func (j *RenderJob) Complete(bytes, pages int) {
	j.Status = StatusCompleted
	j.Bytes = bytes
	j.Pages = pages
	j.Error = ""
	j.UpdatedAt = time.Now().UTC()
}

// Fail marks the job failed with err's message.
func (j *RenderJob) Fail(err error) {
	j.Status = StatusFailed
	if err != nil {
		j.Error = err.Error()
	}
	j.UpdatedAt = time.Now().UTC()
}
