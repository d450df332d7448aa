package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newRestaurantsCmd(open catalogOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "Browse the restaurant catalog",
	}
	cmd.AddCommand(newRestaurantsListCmd(open))
	cmd.AddCommand(newRestaurantsShowCmd(open))
	return cmd
}

func newRestaurantsListCmd(open catalogOpener) *cobra.Command {
	var query string

	c := &cobra.Command{
		Use:   "list",
		Short: "List restaurants, optionally filtered by name or cuisine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := open()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tRATING\tPRICE")
			for _, r := range cat.Search(query) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\n", r.ID, r.Name, r.Cuisine, r.Rating, r.PriceTier)
			}
			return tw.Flush()
		},
	}
	c.Flags().StringVarP(&query, "search", "q", "", "filter by name or cuisine")
	return c
}

func newRestaurantsShowCmd(open catalogOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one restaurant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := open()
			if err != nil {
				return err
			}
			r, err := cat.Restaurant(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", r.Name, r.ID)
			fmt.Fprintf(out, "cuisine: %s  rating: %.1f  price: %s\n", r.Cuisine, r.Rating, r.PriceTier)
			fmt.Fprintf(out, "address: %s\n", r.Address)
			if r.Description != "" {
				fmt.Fprintf(out, "\n%s\n", r.Description)
			}
			return nil
		},
	}
}
