package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses, in pipeline order.
const (
	StatusReceived   = "received"
	StatusExtracting = "extracting"
	StatusParsing    = "parsing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ParseRun tracks a single document through the pipeline, mainly for
// logging and response metadata.
type ParseRun struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	Size      int       `json:"size"`
	Status    string    `json:"status"`
	Strategy  string    `json:"strategy"`
	LLMUsed   bool      `json:"llm_used"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewRun(filename string, size int) *ParseRun {
	now := time.Now()
	return &ParseRun{
		ID:        uuid.New(),
		Filename:  filename,
		Size:      size,
		Status:    StatusReceived,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *ParseRun) SetStatus(status string) {
	r.Status = status
	r.UpdatedAt = time.Now()
}

func (r *ParseRun) Complete() {
	r.SetStatus(StatusCompleted)
}

func (r *ParseRun) Fail(err error) {
	if err != nil {
		r.Error = err.Error()
	}
	r.SetStatus(StatusFailed)
}
