// Package wizard implements the booking flow as a sequence of pure steps.
//
// Each step takes the state accumulated so far plus that step's input and
// returns the next state. Steps only add parameters; an earlier parameter is
// never rewritten. The last step swaps the restaurant id for the full record.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/reserva-rapida/internal/domain/restaurant"
	"github.com/example/reserva-rapida/internal/internaltypes"
)

// ProtocolCode is the mock confirmation code shown after booking.
const ProtocolCode = "RPR-482025"

const (
	MinPartySize = 1
	MaxPartySize = 10
)

var ErrOutOfOrder = errors.New("wizard: step out of order")

type Step int

const (
	StepSelectDateTime Step = iota + 1
	StepSelectPartySize
	StepReview
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepSelectDateTime:
		return "select_date_time"
	case StepSelectPartySize:
		return "select_party_size"
	case StepReview:
		return "review"
	case StepConfirmation:
		return "confirmation"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// State is what a booking attempt has collected before the review step.
type State struct {
	Step         Step
	RestaurantID string
	Date         string
	Time         string
	PartySize    int
}

// Params names the parameters available at the current step.
func (s State) Params() []string {
	switch s.Step {
	case StepSelectDateTime:
		return []string{"restaurantId"}
	case StepSelectPartySize:
		return []string{"restaurantId", "date", "time"}
	case StepReview:
		return []string{"restaurantId", "date", "time", "partySize"}
	default:
		return nil
	}
}

// Finder resolves restaurant ids against the catalog.
type Finder interface {
	Restaurant(id string) (restaurant.Restaurant, error)
}

type DateTimeInput struct {
	Date string
	Time string
}

func Start(restaurantID string) State {
	return State{Step: StepSelectDateTime, RestaurantID: restaurantID}
}

// SelectDateTime requires one date out of window and one slot out of TimeSlots.
func SelectDateTime(prior State, window []Day, in DateTimeInput) (State, error) {
	if prior.Step != StepSelectDateTime {
		return prior, fmt.Errorf("%w: select date/time from %s", ErrOutOfOrder, prior.Step)
	}
	date := strings.TrimSpace(in.Date)
	tm := strings.TrimSpace(in.Time)
	if date == "" || tm == "" {
		return prior, internaltypes.Invalid("", "Please select a date and a time.")
	}
	if !inWindow(window, date) {
		return prior, internaltypes.Invalid("date", fmt.Sprintf("%s is not an available date", date))
	}
	if !isSlot(tm) {
		return prior, internaltypes.Invalid("time", fmt.Sprintf("%s is not an available time", tm))
	}

	next := prior
	next.Step = StepSelectPartySize
	next.Date = date
	next.Time = tm
	return next, nil
}

// SelectPartySize takes the chosen size; 0 means nothing was chosen.
func SelectPartySize(prior State, size int) (State, error) {
	if prior.Step != StepSelectPartySize {
		return prior, fmt.Errorf("%w: select party size from %s", ErrOutOfOrder, prior.Step)
	}
	if size == 0 {
		return prior, internaltypes.Invalid("", "Please select the number of people.")
	}
	if size < MinPartySize || size > MaxPartySize {
		return prior, internaltypes.Invalid("party_size", fmt.Sprintf("party size must be between %d and %d", MinPartySize, MaxPartySize))
	}

	next := prior
	next.Step = StepReview
	next.PartySize = size
	return next, nil
}

// Back pops the flow to an earlier step, dropping what was gathered after it.
// Parameters gathered up to that step are kept as they were. A confirmed
// attempt is finished and cannot be rewound.
func Back(s State, to Step) (State, error) {
	if s.Step == StepConfirmation || to < StepSelectDateTime || to > s.Step || to > StepReview {
		return s, fmt.Errorf("%w: back from %s to %s", ErrOutOfOrder, s.Step, to)
	}
	out := State{Step: to, RestaurantID: s.RestaurantID}
	if to >= StepSelectPartySize {
		out.Date, out.Time = s.Date, s.Time
	}
	if to >= StepReview {
		out.PartySize = s.PartySize
	}
	return out, nil
}

// Booking is what the confirmation step receives: the full restaurant record
// instead of its id.
type Booking struct {
	Restaurant restaurant.Restaurant
	Date       string
	Time       string
	PartySize  int
	Notes      string
}

func (b Booking) Params() []string {
	return []string{"restaurantId", "date", "time", "partySize", "restaurant", "notes"}
}

// Review resolves the restaurant and attaches the optional notes.
func Review(prior State, f Finder, notes string) (Booking, error) {
	if prior.Step != StepReview {
		return Booking{}, fmt.Errorf("%w: review from %s", ErrOutOfOrder, prior.Step)
	}
	rest, err := f.Restaurant(prior.RestaurantID)
	if err != nil {
		return Booking{}, fmt.Errorf("review %q: %w", prior.RestaurantID, err)
	}
	return Booking{
		Restaurant: rest,
		Date:       prior.Date,
		Time:       prior.Time,
		PartySize:  prior.PartySize,
		Notes:      notes,
	}, nil
}

// Confirmation is the terminal screen.
type Confirmation struct {
	Protocol string
	Booking  Booking
}

func Confirm(b Booking) Confirmation {
	return Confirmation{Protocol: ProtocolCode, Booking: b}
}

// Notes returns the observations trimmed of surrounding whitespace.
func (c Confirmation) Notes() string {
	return strings.TrimSpace(c.Booking.Notes)
}

// ShowNotes reports whether the observations block is rendered.
func (c Confirmation) ShowNotes() bool {
	return c.Notes() != ""
}

// Exit is one of the two ways out of the confirmation screen.
type Exit string

const (
	// ExitHome pops the whole wizard stack back to the restaurant list.
	ExitHome Exit = "home"
	// ExitReservations pops the stack and switches to the reservations tab.
	ExitReservations Exit = "reservations"
)

func ParseExit(s string) (Exit, error) {
	switch e := Exit(s); e {
	case ExitHome, ExitReservations:
		return e, nil
	default:
		return "", internaltypes.Invalid("to", fmt.Sprintf("unknown exit %q", s))
	}
}
