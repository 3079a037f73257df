package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModelsCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "Список доступных моделей",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := dialVTS(cmd.Context(), *configPath, initLogger())
			if err != nil {
				return err
			}
			defer v.Close()

			out, err := v.AvailableModels(cmd.Context())
			if err != nil {
				return err
			}

			for _, m := range out.AvailableModels {
				marker := " "
				if m.ModelLoaded {
					marker = "*"
				}
				fmt.Printf("%s %-40s %s\n", marker, m.ModelName, m.ModelID)
			}
			fmt.Printf("%d models (* — loaded)\n", out.NumberOfModels)
			return nil
		},
	}
}
