package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"cardturner/internal/util"
)

// Config provides configuration for the card turner
type Config struct {
	loaded     bool
	ListenAddr string `yaml:"listenAddr" envconfig:"listen_addr"`
	Log        struct {
		Level             string `yaml:"level" envconfig:"log_level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.ListenAddr = ":5000"
	c.Log.Level = "info"

	return c
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is fine: the
// defaults plus the environment apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("CARDTURNER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("cardturner", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
