package domain

import (
	"fmt"
	"time"
)

type RunStatus string

const (
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

// Run is one recorded pass of the file driver.
type Run struct {
	ID             int64     `json:"id" yaml:"id"`
	Mode           Mode      `json:"mode" yaml:"mode"`
	Shift          int       `json:"shift" yaml:"shift"`
	InputPath      string    `json:"input" yaml:"input"`
	OutputPath     string    `json:"output" yaml:"output"`
	BytesProcessed int64     `json:"bytes" yaml:"bytes"`
	Status         RunStatus `json:"status" yaml:"status"`
	Error          string    `json:"error,omitempty" yaml:"error,omitempty"`
	StartedAt      time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt     time.Time `json:"finished_at" yaml:"finished_at"`
}

func (r *Run) String() string {
	s := fmt.Sprintf("%d) %s shift=%d %s -> %s [%s, %d bytes]",
		r.ID, r.Mode, r.Shift, r.InputPath, r.OutputPath, r.Status, r.BytesProcessed)
	if r.Error != "" {
		s += ": " + r.Error
	}
	return s
}
