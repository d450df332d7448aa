package cmd

import (
	"fmt"
	"os"

	"github.com/example/reserva-rapida/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func NewRootCmd() *cobra.Command {
	var catalogFile string

	root := &cobra.Command{
		Use:          "reservarapida",
		Short:        "Browse restaurants and book a table (web client + CLI over a static catalog)",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&catalogFile, "catalog", os.Getenv("CATALOG_FILE"), "catalog YAML file (default: built-in catalog)")

	open := func() (*catalog.Catalog, error) { return catalog.Open(catalogFile) }

	root.AddCommand(newVersionCmd())
	root.AddCommand(newKeysCmd())
	root.AddCommand(newServerCmd(open))
	root.AddCommand(newRestaurantsCmd(open))
	root.AddCommand(newReservationsCmd(open))
	root.AddCommand(newBookCmd(open))
	root.AddCommand(newRateCmd(open))
	root.AddCommand(newSignupCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type catalogOpener func() (*catalog.Catalog, error)
