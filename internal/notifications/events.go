package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Event types published to the events topic.
const (
	EventScheduleDeparted  = "schedule.departed"
	EventScheduleArrived   = "schedule.arrived"
	EventScheduleDelayed   = "schedule.delayed"
	EventScheduleCancelled = "schedule.cancelled"
	EventTicketBooked      = "ticket.booked"
	EventTicketCancelled   = "ticket.cancelled"
	EventTicketReassigned  = "ticket.reassigned"
	EventParcelReceived    = "parcel.received"
	EventParcelStatus      = "parcel.status_changed"
)

// Event is the envelope for every message on the events topic. The
// partition key is the schedule ID so events for one trip stay ordered.
type Event struct {
	ID         uuid.UUID              `json:"id"`
	Type       string                 `json:"type"`
	ScheduleID uuid.UUID              `json:"schedule_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
}

// NewEvent builds an event with a fresh ID and timestamp.
func NewEvent(eventType string, scheduleID uuid.UUID, payload map[string]interface{}) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		ScheduleID: scheduleID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
