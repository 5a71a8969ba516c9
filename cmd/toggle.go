package cmd

import "github.com/spf13/cobra"

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle the monitor input between USB-C and DisplayPort",
	Long: `Toggle reads the monitor's current input and switches to the other one
of the USB-C/DisplayPort pair. When the monitor will not report its
input, the last value this tool applied is used instead, and with no
recorded value the current input is assumed to be USB-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		return env.sw.Toggle()
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
