package wizard

import (
	"errors"
	"testing"
	"time"

	"github.com/example/reserva-rapida/internal/internaltypes"
)

func TestController(t *testing.T) {
	c := NewController(finder, func() time.Time { return christmas })

	if err := c.Begin("r99"); !errors.Is(err, internaltypes.ErrNotFound) {
		t.Fatalf("Begin(r99) error = %v, want ErrNotFound", err)
	}
	if err := c.Begin("r2"); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if len(c.Window()) != WindowDays || c.Window()[0].Date != "25/12/2024" {
		t.Errorf("Window() = %+v", c.Window())
	}

	if err := c.ChoosePartySize(4); !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("ChoosePartySize before date error = %v", err)
	}
	if err := c.ChooseDateTime("25/12/2024", ""); err == nil {
		t.Error("ChooseDateTime without time expected error")
	}
	if c.State().Step != StepSelectDateTime {
		t.Errorf("step after failure = %s", c.State().Step)
	}

	if err := c.ChooseDateTime("25/12/2024", "19:30"); err != nil {
		t.Fatal(err)
	}
	if err := c.ChoosePartySize(4); err != nil {
		t.Fatal(err)
	}
	conf, err := c.Confirm("")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if conf.ShowNotes() {
		t.Error("ShowNotes() = true for empty notes")
	}
	if c.State().Step != StepConfirmation {
		t.Errorf("step = %s, want confirmation", c.State().Step)
	}
}
