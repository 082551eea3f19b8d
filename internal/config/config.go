package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-table/internal/util"
)

// Config provides configuration for the hold'em table
type Config struct {
	loaded        bool
	StartingChips int      `yaml:"startingChips" envconfig:"starting_chips"`
	SmallBlind    int      `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind      int      `yaml:"bigBlind" envconfig:"big_blind"`
	Seed          int64    `yaml:"seed" envconfig:"seed"`
	Players       []string `yaml:"players" envconfig:"players"`
	Log           struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	}
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

// Load will load the configuration
// A missing config file is not an error; the defaults are used instead.
func Load() error {
	config = defaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaultConfig() Config {
	var c Config
	c.StartingChips = 20000
	c.SmallBlind = 100
	c.BigBlind = 200
	return c
}
