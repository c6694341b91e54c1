// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in an optional settings file and those available from
// the command line
type Config struct {
	// the column width used when wrapping FASTA output
	Width int `mapstructure:"fasta-width"`

	// whether to log a progress line for every gene processed
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by Viper settings
// (either from a settings file passed via --settings or from
// command line arguments)
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	if c.Width == 0 {
		c.Width = 60
	}

	return &c
}
