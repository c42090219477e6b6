package response

import "time"

type Notification struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	JobID     uint      `json:"jobId,omitempty"`
	RefID     uint      `json:"refId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
