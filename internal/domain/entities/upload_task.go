package entities

import "time"

// UploadTask is the operator view of a file waiting for (or given up on by) the
// background upload queue. The payload itself is never exposed.
type UploadTask struct {
	Token       string    `json:"token"`
	Key         string    `json:"key"`
	ContentType string    `json:"contentType"`
	Size        int       `json:"size"`
	Attempts    int       `json:"attempts"`
	LastError   string    `json:"lastError,omitempty"`
	EnqueuedAt  time.Time `json:"enqueuedAt"`
}
