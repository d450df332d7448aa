package wizard

import (
	"fmt"
	"time"
)

// Controller owns the state of a single booking attempt and drives it through
// the step functions. It is discarded after Confirm or when abandoned.
type Controller struct {
	catalog Finder
	now     func() time.Time

	state  State
	window []Day
}

func NewController(f Finder, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{catalog: f, now: now}
}

// Begin starts a booking for an existing restaurant.
func (c *Controller) Begin(restaurantID string) error {
	if _, err := c.catalog.Restaurant(restaurantID); err != nil {
		return fmt.Errorf("begin %q: %w", restaurantID, err)
	}
	c.state = Start(restaurantID)
	c.window = DateWindow(c.now())
	return nil
}

// Window is the date window offered by the current attempt.
func (c *Controller) Window() []Day { return c.window }

func (c *Controller) State() State { return c.state }

func (c *Controller) ChooseDateTime(date, tm string) error {
	next, err := SelectDateTime(c.state, c.window, DateTimeInput{Date: date, Time: tm})
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

func (c *Controller) ChoosePartySize(n int) error {
	next, err := SelectPartySize(c.state, n)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// Confirm runs the review step with notes and returns the confirmation.
func (c *Controller) Confirm(notes string) (Confirmation, error) {
	b, err := Review(c.state, c.catalog, notes)
	if err != nil {
		return Confirmation{}, err
	}
	c.state.Step = StepConfirmation
	return Confirm(b), nil
}
