package cmd

import (
	"fmt"
	"time"

	"github.com/example/reserva-rapida/internal/metrics"
	"github.com/example/reserva-rapida/internal/wizard"
	"github.com/spf13/cobra"
)

func newBookCmd(open catalogOpener) *cobra.Command {
	var (
		restaurantID string
		date         string
		slot         string
		partySize    int
		notes        string
		timezone     string
	)

	c := &cobra.Command{
		Use:   "book",
		Short: "Run a booking through the wizard and print the confirmation (nothing is stored)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := open()
			if err != nil {
				return err
			}

			if timezone == "" {
				timezone = "Local"
			}
			loc, err := time.LoadLocation(timezone)
			if err != nil {
				return fmt.Errorf("invalid --timezone: %w", err)
			}
			now := func() time.Time { return time.Now().In(loc) }

			ctl := wizard.NewController(cat, now)
			if err := ctl.Begin(restaurantID); err != nil {
				return err
			}
			if err := ctl.ChooseDateTime(date, slot); err != nil {
				return err
			}
			if err := ctl.ChoosePartySize(partySize); err != nil {
				return err
			}
			conf, err := ctl.Confirm(notes)
			if err != nil {
				return err
			}
			metrics.IncBookingConfirmed(conf.Booking.Restaurant.ID)

			out := cmd.OutOrStdout()
			b := conf.Booking
			fmt.Fprintf(out, "Reservation requested! protocol=%s\n", conf.Protocol)
			fmt.Fprintf(out, "restaurant: %s\n", b.Restaurant.Name)
			fmt.Fprintf(out, "when: %s at %s\n", b.Date, b.Time)
			fmt.Fprintf(out, "people: %d\n", b.PartySize)
			if conf.ShowNotes() {
				fmt.Fprintf(out, "notes: %q\n", conf.Notes())
			}
			return nil
		},
	}

	c.Flags().StringVar(&restaurantID, "restaurant", "", "restaurant id")
	c.Flags().StringVar(&date, "date", "", "date dd/mm/yyyy within the next 7 days, starting today")
	c.Flags().StringVar(&slot, "time", "", "time slot HH:MM between 18:00 and 22:00")
	c.Flags().IntVar(&partySize, "party-size", 0, "number of people (1-10)")
	c.Flags().StringVar(&notes, "notes", "", "observations for the restaurant")
	c.Flags().StringVar(&timezone, "timezone", "", "IANA timezone for the date window (default local)")
	_ = c.MarkFlagRequired("restaurant")
	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("time")

	return c
}
