package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newStatsCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Разовый снимок статистики VTube Studio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := dialVTS(cmd.Context(), *configPath, initLogger())
			if err != nil {
				return err
			}
			defer v.Close()

			st, err := v.Statistics(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("VTube Studio %s\n", st.VTubeStudioVersion)
			fmt.Printf("  uptime:     %s\n", (time.Duration(st.Uptime) * time.Millisecond).Round(time.Second))
			fmt.Printf("  framerate:  %d fps\n", st.Framerate)
			fmt.Printf("  plugins:    %d connected / %d allowed\n", st.ConnectedPlugins, st.AllowedPlugins)
			fmt.Printf("  window:     %dx%d (fullscreen: %v)\n", st.WindowWidth, st.WindowHeight, st.WindowIsFullscreen)
			return nil
		},
	}
}
