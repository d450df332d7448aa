package cmd

import (
	"fmt"
	"log"

	"github.com/example/reserva-rapida/internal/rating"
	"github.com/spf13/cobra"
)

func newRateCmd(open catalogOpener) *cobra.Command {
	var (
		reservationID string
		stars         int
		tags          []string
		comment       string
	)

	c := &cobra.Command{
		Use:   "rate",
		Short: "Rate a completed reservation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := open()
			if err != nil {
				return err
			}
			res, err := cat.Reservation(reservationID)
			if err != nil {
				return err
			}
			f, err := rating.NewForm(res)
			if err != nil {
				return err
			}
			if err := f.SetStars(stars); err != nil {
				return err
			}
			for _, t := range tags {
				if err := f.ToggleTag(t); err != nil {
					return err
				}
			}
			f.SetComment(comment)

			sub, err := f.Submit()
			if err != nil {
				return err
			}
			rating.LogSink{Logger: log.New(cmd.ErrOrStderr(), "", log.LstdFlags)}.Record(sub)
			fmt.Fprintf(cmd.OutOrStdout(), "Thank you! Your rating was sent. id=%s\n", sub.ID)
			return nil
		},
	}

	c.Flags().StringVar(&reservationID, "reservation", "", "reservation id")
	c.Flags().IntVar(&stars, "stars", 0, "stars 1-5")
	c.Flags().StringArrayVar(&tags, "tag", nil, "highlight (repeatable), one of the rating options")
	c.Flags().StringVar(&comment, "comment", "", "optional comment")
	_ = c.MarkFlagRequired("reservation")

	return c
}
