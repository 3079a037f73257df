package main

import (
	"github.com/spf13/cobra"

	"vtsgo/internal/watcher"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Подписаться на события из конфига и работать до Ctrl+C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := initLogger()

			cfg, err := watcher.Load(*configPath)
			if err != nil {
				return err
			}

			w := watcher.New(cfg, log)
			if err := w.Start(cmd.Context()); err != nil {
				return err
			}
			defer w.Stop()

			log.Info().Msg("running… press Ctrl+C to stop")
			<-cmd.Context().Done()
			return nil
		},
	}
}
