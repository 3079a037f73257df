package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vtsgo/pkg/vtsclient"
)

func newHotkeyCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "hotkey [hotkeyID]",
		Short: "Выполнить хоткей; без аргумента — показать список",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := dialVTS(cmd.Context(), *configPath, initLogger())
			if err != nil {
				return err
			}
			defer v.Close()

			if len(args) == 0 {
				out, err := v.Hotkeys(cmd.Context(), vtsclient.HotkeysInCurrentModelRequestData{})
				if err != nil {
					return err
				}
				for _, hk := range out.AvailableHotkeys {
					fmt.Printf("%-36s %-24s %s\n", hk.HotkeyID, hk.Type, hk.Name)
				}
				return nil
			}

			out, err := v.TriggerHotkey(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("triggered %s\n", out.HotkeyID)
			return nil
		},
	}
}
