package rating

import (
	"fmt"
	"strings"

	"github.com/example/reserva-rapida/internal/domain/reservation"
	"github.com/example/reserva-rapida/internal/internaltypes"
	"github.com/google/uuid"
)

const MaxStars = 5

var options = []string{
	"Tasty food",
	"Excellent service",
	"Pleasant atmosphere",
	"Great drinks",
	"Fair price",
	"Amazing dessert",
	"Fast",
}

// Options returns the quick tags a user can pick, in display order.
func Options() []string {
	out := make([]string, len(options))
	copy(out, options)
	return out
}

func isOption(tag string) bool {
	for _, o := range options {
		if o == tag {
			return true
		}
	}
	return false
}

// Form is the local state of the rating screen.
type Form struct {
	RestaurantID  string
	ReservationID string

	stars   int
	tags    map[string]bool
	comment string
}

// NewForm opens the rating screen for a completed reservation.
func NewForm(r reservation.Reservation) (*Form, error) {
	if r.Status != reservation.StatusCompleted {
		return nil, internaltypes.Invalid("status", fmt.Sprintf("only completed reservations can be rated (got %s)", r.Status))
	}
	return &Form{
		RestaurantID:  r.Restaurant.ID,
		ReservationID: r.ID,
		tags:          map[string]bool{},
	}, nil
}

// SetStars sets the star rating; 0 clears it.
func (f *Form) SetStars(n int) error {
	if n < 0 || n > MaxStars {
		return internaltypes.Invalid("stars", fmt.Sprintf("stars must be between 1 and %d", MaxStars))
	}
	f.stars = n
	return nil
}

func (f *Form) Stars() int { return f.stars }

// ToggleTag adds the tag when absent and removes it when present.
func (f *Form) ToggleTag(tag string) error {
	if !isOption(tag) {
		return internaltypes.Invalid("tags", fmt.Sprintf("unknown tag %q", tag))
	}
	if f.tags[tag] {
		delete(f.tags, tag)
	} else {
		f.tags[tag] = true
	}
	return nil
}

func (f *Form) Selected(tag string) bool { return f.tags[tag] }

// Tags returns the selected tags in option order.
func (f *Form) Tags() []string {
	out := []string{}
	for _, o := range options {
		if f.tags[o] {
			out = append(out, o)
		}
	}
	return out
}

func (f *Form) SetComment(s string) { f.comment = s }

func (f *Form) Comment() string { return f.comment }

// CanSubmit reports whether a star rating has been chosen.
func (f *Form) CanSubmit() bool { return f.stars >= 1 }

// StarsLabel is the hint under the stars.
func (f *Form) StarsLabel() string {
	if f.stars == 0 {
		return "Tap the stars"
	}
	if f.stars == 1 {
		return "1 star"
	}
	return fmt.Sprintf("%d stars", f.stars)
}

// Submission is the payload sent when the user submits a rating.
type Submission struct {
	ID            uuid.UUID
	ReservationID string
	RestaurantID  string
	Stars         int
	Tags          []string
	Comment       string
}

func (f *Form) Submit() (Submission, error) {
	if !f.CanSubmit() {
		return Submission{}, internaltypes.Invalid("stars", "Choose at least one star before submitting.")
	}
	return Submission{
		ID:            uuid.New(),
		ReservationID: f.ReservationID,
		RestaurantID:  f.RestaurantID,
		Stars:         f.stars,
		Tags:          f.Tags(),
		Comment:       strings.TrimSpace(f.comment),
	}, nil
}
