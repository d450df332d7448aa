package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/reserva-rapida/internal/domain/reservation"
	"github.com/spf13/cobra"
)

func newReservationsCmd(open catalogOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "reservations",
		Short: "List reservations split into active and history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := open()
			if err != nil {
				return err
			}
			active, history := reservation.Partition(cat.Reservations())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Upcoming")
			if len(active) == 0 {
				fmt.Fprintln(out, "  You have no upcoming reservations.")
			} else if err := writeReservations(out, active); err != nil {
				return err
			}

			fmt.Fprintln(out, "\nHistory")
			if len(history) == 0 {
				fmt.Fprintln(out, "  No past reservations yet.")
			} else if err := writeReservations(out, history); err != nil {
				return err
			}
			return nil
		},
	}
}

func writeReservations(w io.Writer, list []reservation.Reservation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tPROTOCOL\tRESTAURANT\tDATE\tTIME\tPEOPLE\tSTATUS\tACTION")
	for _, r := range list {
		badge, err := reservation.BadgeFor(r.Status)
		if err != nil {
			return err
		}
		action, err := reservation.ActionFor(r.Status)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Protocol, r.Restaurant.Name, r.Date, r.Time, r.PartySize, badge.Label, action.Label())
	}
	return tw.Flush()
}
