package reservation

import (
	"fmt"

	"github.com/example/reserva-rapida/internal/domain/restaurant"
	"github.com/example/reserva-rapida/internal/internaltypes"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every known status in display order.
func Statuses() []Status {
	return []Status{StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled}
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusConfirmed, StatusPending, StatusCompleted, StatusCancelled:
		return st, nil
	default:
		return "", internaltypes.Invalid("status", fmt.Sprintf("unknown reservation status %q", s))
	}
}

// Reservation is a mock booking record. The restaurant is held by value.
type Reservation struct {
	ID         string
	Protocol   string
	Date       string // dd/mm/yyyy
	Time       string // HH:MM
	PartySize  int
	Status     Status
	Restaurant restaurant.Restaurant
}
