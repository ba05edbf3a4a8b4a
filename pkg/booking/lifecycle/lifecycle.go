// Package lifecycle holds the booking status graph.
package lifecycle

import (
	"time"

	"motoservice-be/internal/entity"
)

// EstimatedDuration is added to started_at to give the customer an ETA.
const EstimatedDuration = 30 * time.Minute

type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionAssign   Action = "assign"
	ActionStart    Action = "start"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
)

type edge struct {
	from []entity.BookingStatus
	to   entity.BookingStatus
}

var edges = map[Action]edge{
	ActionConfirm:  {from: []entity.BookingStatus{entity.BookingStatusPending}, to: entity.BookingStatusConfirmed},
	ActionAssign:   {from: []entity.BookingStatus{entity.BookingStatusConfirmed}, to: entity.BookingStatusAssigned},
	ActionStart:    {from: []entity.BookingStatus{entity.BookingStatusAssigned}, to: entity.BookingStatusStarted},
	ActionComplete: {from: []entity.BookingStatus{entity.BookingStatusStarted}, to: entity.BookingStatusCompleted},
	// assigned and started bookings are already in the worker's hands
	ActionCancel: {from: []entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed}, to: entity.BookingStatusCancelled},
}

// Next returns the status the action leads to from the given status.
// ok is false when the action is not allowed from there.
func Next(action Action, from entity.BookingStatus) (entity.BookingStatus, bool) {
	e, found := edges[action]
	if !found {
		return "", false
	}
	for _, s := range e.from {
		if s == from {
			return e.to, true
		}
	}
	return "", false
}

// AuditAction is the action name written to the admin log.
func AuditAction(action Action) string {
	return "booking." + string(action)
}

// DurationMinutes is the whole minutes between start and completion.
func DurationMinutes(startedAt, completedAt time.Time) int {
	return int(completedAt.Sub(startedAt) / time.Minute)
}
