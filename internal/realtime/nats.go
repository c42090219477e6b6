package realtime

import (
	"encoding/json"
	"fmt"
	"log"

	"jobboard/internal/events"

	"github.com/nats-io/nats.go"
)

// NATSBridge subscribes to the domain event subjects and pushes
// notifications into the Hub.
type NATSBridge struct {
	conn *nats.Conn
	hub  *Hub
}

// outgoingMsg is the envelope sent to the client.
type outgoingMsg struct {
	Type    string       `json:"type"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
	Event   events.Event `json:"event"`
}

func NewNATSBridge(natsURL string, hub *Hub) (*NATSBridge, error) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return &NATSBridge{conn: nc, hub: hub}, nil
}

// Subscribe wires each event subject to its notification target: new
// applications go to the employer, status changes to the applicant, access
// requests to online admins and grants back to the employer.
func (b *NATSBridge) Subscribe() error {
	routes := []struct {
		subject string
		handler func(events.Event)
	}{
		{events.SubjectApplicationCreated, func(ev events.Event) {
			b.push(ev.EmployerID, outgoingMsg{
				Type:    "application_received",
				Title:   "New application",
				Message: fmt.Sprintf("A candidate applied for %s", ev.JobTitle),
				Event:   ev,
			})
		}},
		{events.SubjectApplicationStatus, func(ev events.Event) {
			b.push(ev.ApplicantID, outgoingMsg{
				Type:    "status_update",
				Title:   "Application update",
				Message: fmt.Sprintf("Your application is now %s", ev.Status),
				Event:   ev,
			})
		}},
		{events.SubjectAccessRequested, func(ev events.Event) {
			b.push(0, outgoingMsg{
				Type:    "access_requested",
				Title:   "Details access requested",
				Message: fmt.Sprintf("An employer requested applicant details for application %d", ev.ApplicationID),
				Event:   ev,
			})
		}},
		{events.SubjectAccessGranted, func(ev events.Event) {
			b.push(ev.EmployerID, outgoingMsg{
				Type:    "access_granted",
				Title:   "Applicant details unlocked",
				Message: "Your request to view applicant details was approved",
				Event:   ev,
			})
		}},
	}

	for _, route := range routes {
		handler := route.handler
		_, err := b.conn.Subscribe(route.subject, func(msg *nats.Msg) {
			var ev events.Event
			if err := json.Unmarshal(msg.Data, &ev); err != nil {
				log.Printf("nats: bad payload on %q: %v", msg.Subject, err)
				return
			}
			handler(ev)
		})
		if err != nil {
			return fmt.Errorf("nats subscribe %q: %w", route.subject, err)
		}
		log.Printf("NATS bridge subscribed to: %s", route.subject)
	}
	return nil
}

func (b *NATSBridge) push(userID uint, msg outgoingMsg) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("nats: marshal envelope: %v", err)
		return
	}
	b.hub.Deliver(userID, data)
}

// Close drains the NATS connection.
func (b *NATSBridge) Close() {
	if err := b.conn.Drain(); err != nil {
		log.Printf("nats drain: %v", err)
	}
}
