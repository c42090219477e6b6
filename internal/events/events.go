// Package events publishes domain events to NATS. Subjects follow
// jobboard.<entity>.<action>; the realtime bridge subscribes to them to
// feed dashboard notification streams. Publishing is best effort: a dead
// broker never fails the originating request.
package events

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

const (
	SubjectApplicationCreated = "jobboard.application.created"
	SubjectApplicationStatus  = "jobboard.application.status"
	SubjectAccessRequested    = "jobboard.access.requested"
	SubjectAccessGranted      = "jobboard.access.granted"
)

// Event is the payload published on every subject.
type Event struct {
	ApplicationID uint      `json:"applicationId"`
	JobID         uint      `json:"jobId"`
	JobTitle      string    `json:"jobTitle,omitempty"`
	ApplicantID   uint      `json:"applicantId"`
	EmployerID    uint      `json:"employerId"`
	Status        string    `json:"status,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publisher fans domain events out to NATS. A nil Publisher (or one built
// from an empty URL) is a no-op so the broker stays optional.
type Publisher struct {
	conn   *nats.Conn
	logger zerolog.Logger
}

func NewPublisher(natsURL string, logger zerolog.Logger) (*Publisher, error) {
	if natsURL == "" {
		return nil, nil
	}
	conn, err := nats.Connect(natsURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, logger: logger}, nil
}

func (p *Publisher) Publish(subject string, ev Event) {
	if p == nil || p.conn == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("Failed to marshal event")
		return
	}
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Error().Err(err).Str("subject", subject).Msg("Failed to publish event")
	}
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.logger.Error().Err(err).Msg("Failed to drain NATS connection")
	}
}
