package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vtsgo/internal/watcher"
	"vtsgo/pkg/vtsclient"
)

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "vtsgo",
		Short:         "Клиент публичного API VTube Studio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "vtsgo.toml", "путь к TOML-конфигу")

	cmd.AddCommand(
		newRunCommand(&configPath),
		newStatsCommand(&configPath),
		newModelsCommand(&configPath),
		newHotkeyCommand(&configPath),
	)
	return cmd
}

func initLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", "vtsgo").Logger()
}

// dialVTS — общий путь one-shot команд: конфиг → клиент → сессия.
func dialVTS(ctx context.Context, configPath string, log zerolog.Logger) (*vtsclient.VTS, error) {
	cfg, err := watcher.Load(configPath)
	if err != nil {
		return nil, err
	}
	v := vtsclient.New(cfg.ClientConfig(), log)
	if _, err := v.Start(ctx); err != nil {
		return nil, err
	}
	return v, nil
}
