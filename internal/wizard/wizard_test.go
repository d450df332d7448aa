package wizard

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/example/reserva-rapida/internal/domain/restaurant"
	"github.com/example/reserva-rapida/internal/internaltypes"
)

type fakeFinder map[string]restaurant.Restaurant

func (f fakeFinder) Restaurant(id string) (restaurant.Restaurant, error) {
	r, ok := f[id]
	if !ok {
		return restaurant.Restaurant{}, internaltypes.ErrNotFound
	}
	return r, nil
}

var (
	christmas = time.Date(2024, time.December, 25, 15, 4, 0, 0, time.UTC)
	finder    = fakeFinder{
		"r1": {ID: "r1", Name: "Restaurante Praia Azul"},
		"r2": {ID: "r2", Name: "La Pasta Bella"},
	}
)

func TestBookingFlow(t *testing.T) {
	tests := []struct {
		name      string
		notes     string
		wantNotes string
		showNotes bool
	}{
		{name: "withoutNotes", notes: ""},
		{name: "blankNotes", notes: "   "},
		{name: "withNotes", notes: "  window seat please  ", wantNotes: "window seat please", showNotes: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := DateWindow(christmas)

			s1 := Start("r2")
			s2, err := SelectDateTime(s1, window, DateTimeInput{Date: "25/12/2024", Time: "19:30"})
			if err != nil {
				t.Fatalf("SelectDateTime() error = %v", err)
			}
			s3, err := SelectPartySize(s2, 4)
			if err != nil {
				t.Fatalf("SelectPartySize() error = %v", err)
			}
			b, err := Review(s3, finder, tt.notes)
			if err != nil {
				t.Fatalf("Review() error = %v", err)
			}
			conf := Confirm(b)

			if conf.Protocol != ProtocolCode {
				t.Errorf("Protocol = %s, want %s", conf.Protocol, ProtocolCode)
			}
			if b.Restaurant.Name != "La Pasta Bella" || b.Date != "25/12/2024" || b.Time != "19:30" || b.PartySize != 4 {
				t.Errorf("Booking = %+v", b)
			}
			if conf.ShowNotes() != tt.showNotes {
				t.Errorf("ShowNotes() = %v, want %v", conf.ShowNotes(), tt.showNotes)
			}
			if conf.Notes() != tt.wantNotes {
				t.Errorf("Notes() = %q, want %q", conf.Notes(), tt.wantNotes)
			}
		})
	}
}

func TestParamsGrowEachStep(t *testing.T) {
	window := DateWindow(christmas)
	s1 := Start("r1")
	s2, err := SelectDateTime(s1, window, DateTimeInput{Date: window[2].Date, Time: "18:00"})
	if err != nil {
		t.Fatal(err)
	}
	s3, err := SelectPartySize(s2, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Review(s3, finder, "")
	if err != nil {
		t.Fatal(err)
	}

	steps := [][]string{s1.Params(), s2.Params(), s3.Params(), b.Params()}
	for i := 1; i < len(steps); i++ {
		if len(steps[i]) <= len(steps[i-1]) {
			t.Errorf("step %d params %v do not grow from %v", i+1, steps[i], steps[i-1])
		}
		if !reflect.DeepEqual(steps[i][:len(steps[i-1])], steps[i-1]) {
			t.Errorf("step %d params %v are not a superset of %v", i+1, steps[i], steps[i-1])
		}
	}

	if s3.RestaurantID != "r1" || s3.Date != window[2].Date || s3.Time != "18:00" {
		t.Errorf("earlier params rewritten: %+v", s3)
	}
}

func TestSelectDateTimeValidation(t *testing.T) {
	window := DateWindow(christmas)
	tests := []struct {
		name string
		in   DateTimeInput
	}{
		{name: "nothingSelected", in: DateTimeInput{}},
		{name: "noTime", in: DateTimeInput{Date: "25/12/2024"}},
		{name: "outsideWindow", in: DateTimeInput{Date: "01/01/2025", Time: "19:00"}},
		{name: "notASlot", in: DateTimeInput{Date: "25/12/2024", Time: "19:15"}},
		{name: "tooEarly", in: DateTimeInput{Date: "25/12/2024", Time: "17:30"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prior := Start("r1")
			got, err := SelectDateTime(prior, window, tt.in)
			if _, ok := internaltypes.AsValidation(err); !ok {
				t.Fatalf("SelectDateTime() error = %v, want validation error", err)
			}
			if got != prior {
				t.Errorf("state changed on error: %+v", got)
			}
		})
	}
}

func TestSelectPartySizeGuard(t *testing.T) {
	s2 := State{Step: StepSelectPartySize, RestaurantID: "r1", Date: "25/12/2024", Time: "20:00"}

	_, err := SelectPartySize(s2, 0)
	ve, ok := internaltypes.AsValidation(err)
	if !ok {
		t.Fatalf("SelectPartySize(0) error = %v, want validation error", err)
	}
	if !strings.Contains(ve.Message, "number of people") {
		t.Errorf("message = %q", ve.Message)
	}

	for _, n := range []int{-1, 11} {
		if _, err := SelectPartySize(s2, n); err == nil {
			t.Errorf("SelectPartySize(%d) expected error", n)
		}
	}
	for _, n := range PartySizes() {
		if _, err := SelectPartySize(s2, n); err != nil {
			t.Errorf("SelectPartySize(%d) error = %v", n, err)
		}
	}
}

func TestOutOfOrder(t *testing.T) {
	window := DateWindow(christmas)
	s1 := Start("r1")

	if _, err := SelectPartySize(s1, 2); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("SelectPartySize from step 1 error = %v", err)
	}
	if _, err := Review(s1, finder, ""); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("Review from step 1 error = %v", err)
	}
	s2, _ := SelectDateTime(s1, window, DateTimeInput{Date: window[0].Date, Time: "20:00"})
	if _, err := SelectDateTime(s2, window, DateTimeInput{Date: window[1].Date, Time: "21:00"}); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("SelectDateTime twice error = %v", err)
	}
}

func TestReviewUnknownRestaurant(t *testing.T) {
	s := State{Step: StepReview, RestaurantID: "r99", Date: "25/12/2024", Time: "20:00", PartySize: 2}
	if _, err := Review(s, finder, ""); !errors.Is(err, internaltypes.ErrNotFound) {
		t.Errorf("Review() error = %v, want ErrNotFound", err)
	}
}

func TestBack(t *testing.T) {
	s := State{Step: StepReview, RestaurantID: "r1", Date: "25/12/2024", Time: "20:00", PartySize: 3}

	got, err := Back(s, StepSelectPartySize)
	if err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	want := State{Step: StepSelectPartySize, RestaurantID: "r1", Date: "25/12/2024", Time: "20:00"}
	if got != want {
		t.Errorf("Back() = %+v, want %+v", got, want)
	}

	got, err = Back(s, StepSelectDateTime)
	if err != nil {
		t.Fatalf("Back() error = %v", err)
	}
	if got != Start("r1") {
		t.Errorf("Back() to start = %+v", got)
	}

	if _, err := Back(State{Step: StepSelectDateTime}, StepReview); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("Back() forward error = %v", err)
	}

	done := s
	done.Step = StepConfirmation
	for _, to := range []Step{StepSelectDateTime, StepSelectPartySize, StepReview} {
		if _, err := Back(done, to); !errors.Is(err, ErrOutOfOrder) {
			t.Errorf("Back() from confirmation to %s error = %v, want ErrOutOfOrder", to, err)
		}
	}
}

func TestParseExit(t *testing.T) {
	for _, in := range []string{"home", "reservations"} {
		if got, err := ParseExit(in); err != nil || string(got) != in {
			t.Errorf("ParseExit(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseExit("profile"); err == nil {
		t.Error("ParseExit(profile) expected error")
	}
}
