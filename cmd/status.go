package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ddcswitch/internal/sysinfo"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the monitor's current input and the saved state",
	Long: `Status prints the tool's display listing, the configured display
identifier, the live input read, the last input this tool applied (when
recorded), and the legend of known input codes. Read failures are shown
but do not fail the command.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		if info, err := sysinfo.Kernel(); err == nil {
			fmt.Printf("Host: %s %s (%s)\n", info.Name, info.Release, info.Machine)
		}
		fmt.Printf("Tool: %s\n", env.toolPath)
		return env.sw.Status()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
