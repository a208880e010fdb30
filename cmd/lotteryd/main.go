package main

import (
	"lottery_backend/internal/app"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "lotteryd",
		Short:        "Lottery pool registry and draw service",
		SilenceUsage: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP API and the entropy producer",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.NewApp().Run()
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.NewApp().Migrate()
			},
		},
	)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("lotteryd failed")
		os.Exit(1)
	}
}
