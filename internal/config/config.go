package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configData Config
	v          = viper.New()
)

// Config holds all configuration settings.
type Config struct {
	// Compiler configuration
	Compiler struct {
		OutputDir string `mapstructure:"output_dir"`
		Overwrite bool
	}
	// Plugin configuration
	Plugin struct {
		Path string
	}
	// Logging configuration
	Log struct {
		Level  string
		Format string
	}
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":   "log.level",
	"log-format":  "log.format",
	"plugin-path": "plugin.path",
	"output-dir":  "compiler.output_dir",
	"overwrite":   "compiler.overwrite",
}

const defaultConfig = `# eblp configuration file
compiler:
  output_dir: ""
  overwrite: true

plugin:
  path: plugins

log:
  level: info
  format: human
`

// Initialize sets up the configuration system. An empty cfgFile searches the
// default locations. Flags present in flags override file and env values.
func Initialize(cfgFile string, flags *pflag.FlagSet) error {
	v = viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")      // name of config file (without extension)
		v.SetConfigType("yaml")        // config file type
		v.AddConfigPath(".")           // optionally look for config in working directory
		v.AddConfigPath("$HOME/.eblp") // look for config in .eblp directory in home
		v.AddConfigPath("/etc/eblp/")  // path to look for the config file in

		// Create config file if it doesn't exist
		if err := ensureConfig(); err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}
	}

	// Set default values
	setDefaults()

	// Environment variables
	v.SetEnvPrefix("EBLP") // prefix for env vars
	v.AutomaticEnv()       // read in environment variables that match
	v.SetEnvKeyReplacer(   // replace dots with underscores in env vars
		strings.NewReplacer(".", "_"),
	)

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	// Read in config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if we can't find a config file, we'll use defaults
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal config into struct
	configData = Config{}
	if err := v.Unmarshal(&configData); err != nil {
		return fmt.Errorf("unable to decode into config struct: %w", err)
	}

	return nil
}

// setDefaults sets default values for all configuration options.
func setDefaults() {
	// Compiler defaults
	v.SetDefault("compiler.output_dir", "")
	v.SetDefault("compiler.overwrite", true)

	// Plugin defaults
	v.SetDefault("plugin.path", "plugins")

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "human")
}

// ensureConfig creates a default config file if none exists.
func ensureConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory, defaults only.
		return nil
	}

	dir := filepath.Join(home, ".eblp")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	configFile := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := os.WriteFile(configFile, []byte(defaultConfig), 0o644); err != nil {
			return err
		}
	}

	return nil
}

// Get returns the current configuration.
func Get() *Config {
	return &configData
}

// GetViper returns the viper instance.
func GetViper() *viper.Viper {
	return v
}
