package cmd

import (
	"fmt"

	"github.com/example/reserva-rapida/internal/domain/user"
	"github.com/spf13/cobra"
)

// newSignupCmd checks a sign-up form the same way the web screen does.
// Accounts are not stored anywhere.
func newSignupCmd() *cobra.Command {
	var f user.SignupForm

	c := &cobra.Command{
		Use:   "signup",
		Short: "Validate a sign-up form (nothing is stored)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s. You can now log in.\n", f.Name)
			return nil
		},
	}

	c.Flags().StringVar(&f.Name, "name", "", "full name")
	c.Flags().StringVar(&f.Email, "email", "", "email")
	c.Flags().StringVar(&f.Password, "password", "", "password (at least 6 characters)")
	c.Flags().StringVar(&f.Confirm, "confirm", "", "password confirmation")

	return c
}
