package reservation

import (
	"fmt"

	"github.com/example/reserva-rapida/internal/internaltypes"
)

// Active reports whether a reservation with this status still lies ahead.
func (s Status) Active() bool {
	switch s {
	case StatusConfirmed, StatusPending:
		return true
	default:
		return false
	}
}

// Partition splits reservations into upcoming (confirmed, pending) and past
// (completed, cancelled), keeping the input order inside each group.
// Reservations with an unknown status land in neither group.
func Partition(list []Reservation) (active, history []Reservation) {
	active = []Reservation{}
	history = []Reservation{}
	for _, r := range list {
		switch r.Status {
		case StatusConfirmed, StatusPending:
			active = append(active, r)
		case StatusCompleted, StatusCancelled:
			history = append(history, r)
		}
	}
	return active, history
}

// Action is what a reservation card offers the user.
type Action string

const (
	ActionCancel  Action = "cancel"
	ActionRate    Action = "rate"
	ActionDetails Action = "details"
)

// ActionFor maps a status to its card action. Any status outside the four known
// values is rejected; new statuses must be added here and in Badge.
func ActionFor(s Status) (Action, error) {
	switch s {
	case StatusConfirmed:
		return ActionCancel, nil
	case StatusCompleted:
		return ActionRate, nil
	case StatusPending, StatusCancelled:
		return ActionDetails, nil
	default:
		return "", internaltypes.Invalid("status", fmt.Sprintf("no action for status %q", s))
	}
}

func (a Action) Label() string {
	switch a {
	case ActionCancel:
		return "Cancel reservation"
	case ActionRate:
		return "Rate experience"
	default:
		return "View details"
	}
}

// Badge carries the display label and tone of a status.
type Badge struct {
	Label string
	Tone  string
}

func BadgeFor(s Status) (Badge, error) {
	switch s {
	case StatusConfirmed:
		return Badge{Label: "CONFIRMED", Tone: "success"}, nil
	case StatusPending:
		return Badge{Label: "PENDING", Tone: "warning"}, nil
	case StatusCompleted:
		return Badge{Label: "COMPLETED", Tone: "muted"}, nil
	case StatusCancelled:
		return Badge{Label: "CANCELLED", Tone: "danger"}, nil
	default:
		return Badge{}, internaltypes.Invalid("status", fmt.Sprintf("no badge for status %q", s))
	}
}

// CancelPrompt is the confirmation text shown for a cancel intent. Cancelling is
// simulated: nothing changes on the reservation.
func CancelPrompt(r Reservation) (string, error) {
	if r.Status != StatusConfirmed {
		return "", internaltypes.Invalid("status", fmt.Sprintf("reservation %s cannot be cancelled while %s", r.Protocol, r.Status))
	}
	return fmt.Sprintf("Do you really want to cancel reservation %s? (simulation)", r.Protocol), nil
}
