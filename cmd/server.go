package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/reserva-rapida/internal/auth"
	"github.com/example/reserva-rapida/internal/config"
	"github.com/example/reserva-rapida/internal/metrics"
	"github.com/example/reserva-rapida/internal/rating"
	"github.com/example/reserva-rapida/internal/web"
	"github.com/spf13/cobra"
)

func newServerCmd(open catalogOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the web client",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cat, err := open()
			if err != nil {
				return err
			}
			log.Printf("server: %s", buildInfo())
			log.Printf("server: catalog loaded restaurants=%d reservations=%d", len(cat.Restaurants()), len(cat.Reservations()))

			metrics.Register()

			logger := log.New(os.Stderr, "", log.LstdFlags)
			ws := &web.Server{
				Auth:    auth.NewStore(cfg.CookieHashKey, cfg.CookieBlockKey),
				Wizard:  web.NewWizardStore(cfg.CookieHashKey, cfg.CookieBlockKey),
				Catalog: cat,
				Ratings: rating.LogSink{Logger: logger},
				Now:     cfg.Now,
				Logger:  logger,
				BaseURL: cfg.BaseURL,
			}
			return web.Start(ctx, cfg.ListenAddr, ws.Routes())
		},
	}
	return cmd
}
