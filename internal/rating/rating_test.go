package rating

import (
	"reflect"
	"testing"

	"github.com/example/reserva-rapida/internal/domain/reservation"
	"github.com/example/reserva-rapida/internal/domain/restaurant"
	"github.com/google/uuid"
)

func completed() reservation.Reservation {
	return reservation.Reservation{
		ID:         "res2",
		Status:     reservation.StatusCompleted,
		Restaurant: restaurant.Restaurant{ID: "r2", Name: "La Pasta Bella"},
	}
}

func TestNewForm(t *testing.T) {
	for _, st := range reservation.Statuses() {
		r := completed()
		r.Status = st
		_, err := NewForm(r)
		if st == reservation.StatusCompleted && err != nil {
			t.Errorf("NewForm(%s) error = %v", st, err)
		}
		if st != reservation.StatusCompleted && err == nil {
			t.Errorf("NewForm(%s) expected error", st)
		}
	}
}

func TestToggleTagTwiceRestores(t *testing.T) {
	f, err := NewForm(completed())
	if err != nil {
		t.Fatal(err)
	}
	if err := f.ToggleTag("Fast"); err != nil {
		t.Fatal(err)
	}
	before := f.Tags()

	for i := 0; i < 2; i++ {
		if err := f.ToggleTag("Fair price"); err != nil {
			t.Fatal(err)
		}
	}
	if got := f.Tags(); !reflect.DeepEqual(got, before) {
		t.Errorf("Tags() = %v, want %v", got, before)
	}
	if err := f.ToggleTag("Cheap"); err == nil {
		t.Error("ToggleTag(unknown) expected error")
	}
}

func TestSubmit(t *testing.T) {
	f, err := NewForm(completed())
	if err != nil {
		t.Fatal(err)
	}
	if f.CanSubmit() {
		t.Error("CanSubmit() = true with no stars")
	}
	if _, err := f.Submit(); err == nil {
		t.Fatal("Submit() with zero stars expected error")
	}
	if f.StarsLabel() != "Tap the stars" {
		t.Errorf("StarsLabel() = %q", f.StarsLabel())
	}

	if err := f.SetStars(6); err == nil {
		t.Error("SetStars(6) expected error")
	}
	if err := f.SetStars(4); err != nil {
		t.Fatal(err)
	}
	_ = f.ToggleTag("Fast")
	_ = f.ToggleTag("Tasty food")
	f.SetComment("  lovely  ")

	sub, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if sub.ID == uuid.Nil {
		t.Error("Submission has no id")
	}
	if sub.Stars != 4 || sub.ReservationID != "res2" || sub.RestaurantID != "r2" {
		t.Errorf("Submission = %+v", sub)
	}
	if want := []string{"Tasty food", "Fast"}; !reflect.DeepEqual(sub.Tags, want) {
		t.Errorf("Tags = %v, want %v", sub.Tags, want)
	}
	if sub.Comment != "lovely" {
		t.Errorf("Comment = %q", sub.Comment)
	}
	if f.StarsLabel() != "4 stars" {
		t.Errorf("StarsLabel() = %q", f.StarsLabel())
	}

	if err := f.SetStars(0); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Submit(); err == nil {
		t.Error("Submit() after clearing stars expected error")
	}
}
