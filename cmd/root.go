package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ddcswitch/internal/config"
	"ddcswitch/internal/ddc"
	"ddcswitch/internal/state"
	"ddcswitch/internal/switcher"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ddcswitch [command]",
	Short: "Switch a monitor's active video input over DDC/CI",
	Long: `ddcswitch switches the active video input on one external monitor by
driving an m1ddc-compatible tool. Run without a command to switch to
DisplayPort; use 'usbc' for the other direction or 'toggle' to flip
between the two.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		return env.sw.SetDisplayPort()
	},
}

// Execute runs the root command and maps errors to process exit codes. A
// failed hardware write exits with the external tool's code; everything
// else exits 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var ee *ddc.ExitError
		if errors.As(err, &ee) {
			os.Exit(ee.Code)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.ddcswitch.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ddcswitch")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("DDCSWITCH")
	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}

	log.SetTimeFormat("2006-01-02 15:04:05")
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// env bundles what the action commands need. Building it checks the
// external-tool precondition, so the help command and unrecognized
// arguments never touch the monitor.
type env struct {
	cfg      config.Config
	sw       *switcher.Switcher
	toolPath string
}

func newEnv() (*env, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	tool := ddc.NewTool(cfg.Tool)
	toolPath, err := tool.Available()
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH, install it first (e.g. 'brew install %s')", cfg.Tool, cfg.Tool)
	}

	store := state.NewStore(cfg.StateFile)
	return &env{
		cfg:      cfg,
		sw:       switcher.New(cfg, tool, store, os.Stdout),
		toolPath: toolPath,
	}, nil
}
