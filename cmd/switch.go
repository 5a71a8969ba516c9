package cmd

import "github.com/spf13/cobra"

var dpCmd = &cobra.Command{
	Use:     "dp",
	Aliases: []string{"displayport"},
	Short:   "Switch the monitor input to DisplayPort",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		return env.sw.SetDisplayPort()
	},
}

var usbcCmd = &cobra.Command{
	Use:     "usbc",
	Aliases: []string{"usb-c", "typec"},
	Short:   "Switch the monitor input to USB-C",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		return env.sw.SetUSBC()
	},
}

func init() {
	rootCmd.AddCommand(dpCmd)
	rootCmd.AddCommand(usbcCmd)
}
