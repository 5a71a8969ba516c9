package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"ddcswitch/internal/input"
)

// Config carries the per-monitor settings the switcher needs. The defaults
// match the reference deployment (one external monitor addressed by UUID
// through m1ddc); edit ~/.ddcswitch.yaml or set DDCSWITCH_* variables to
// retarget another monitor without rebuilding.
type Config struct {
	// Tool is the name of the external DDC/CI binary. It must understand
	// the m1ddc argument grammar: "display list",
	// "display <id> get input", "display <id> set input <code>".
	Tool string `mapstructure:"tool"`

	// DisplayID addresses the target monitor. Opaque to this program;
	// take it from the tool's display listing.
	DisplayID string `mapstructure:"display_id"`

	DisplayPortCode int `mapstructure:"displayport_code"`
	USBCCode        int `mapstructure:"usbc_code"`

	// StateFile holds the last input code successfully applied, used as a
	// fallback when the monitor will not report its current input.
	StateFile string `mapstructure:"state_file"`
}

const defaultStateFileName = ".ddcswitch-input"

// SetDefaults installs the reference deployment's values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("tool", "m1ddc")
	v.SetDefault("display_id", "37D8832A-2D66-02CA-B9F7-8F30A301B230")
	v.SetDefault("displayport_code", int(input.DisplayPort))
	v.SetDefault("usbc_code", int(input.USBC))
	v.SetDefault("state_file", "")
}

// Load unmarshals the resolved settings from v. An empty state_file is
// expanded to a fixed path under the user's home directory.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse configuration: %w", err)
	}
	if cfg.Tool == "" {
		return Config{}, fmt.Errorf("configuration: tool must not be empty")
	}
	if cfg.DisplayID == "" {
		return Config{}, fmt.Errorf("configuration: display_id must not be empty")
	}
	if cfg.StateFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory for state file: %w", err)
		}
		cfg.StateFile = filepath.Join(home, defaultStateFileName)
	}
	return cfg, nil
}
