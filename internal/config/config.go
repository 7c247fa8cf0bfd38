package config

import (
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// Config holds the runtime configuration, loaded from SECUREDOCS_*
// environment variables.
type Config struct {
	ListenAddr string `split_words:"true" default:":8080"`
	RedisURL   string `split_words:"true"` // empty means in-memory stores, no event publishing
	GinMode    string `split_words:"true" default:"release"`
	Debug      bool   `default:"false"`
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("securedocs", &c); err != nil {
		return nil, err
	}

	if c.Debug {
		log.SetLevel(log.DebugLevel)
	}

	return &c, nil
}
