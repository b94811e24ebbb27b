package model

import "time"

type EventType string

const (
	EventClinicianCreated   EventType = "clinician.created"
	EventClinicianUpdated   EventType = "clinician.updated"
	EventClinicianDeleted   EventType = "clinician.deleted"
	EventPatientCreated     EventType = "patient.created"
	EventPatientUpdated     EventType = "patient.updated"
	EventPatientDeleted     EventType = "patient.deleted"
	EventAppointmentCreated EventType = "appointment.created"
	EventAppointmentUpdated EventType = "appointment.updated"
	EventAppointmentDeleted EventType = "appointment.deleted"
)

// ChangeEvent is published after a successful write
type ChangeEvent struct {
	Type       EventType   `json:"type"`
	ID         string      `json:"id"`
	Data       interface{} `json:"data,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func NewChangeEvent(t EventType, id string, data interface{}) *ChangeEvent {
	return &ChangeEvent{
		Type:       t,
		ID:         id,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}
