package config

import (
	"errors"
	"os"
)

type Config struct {
	BotToken string
	Debug    bool
	OpsPort  string
}

func FromEnv() Config {
	c := Config{}
	c.BotToken = os.Getenv("BOT_TOKEN")
	c.Debug = getenv("DEBUG", "false") == "true"
	c.OpsPort = getenv("OPS_PORT", "8080")
	return c
}

// Validate reports the only fatal configuration fault: a missing token.
func (c Config) Validate() error {
	if c.BotToken == "" {
		return errors.New("BOT_TOKEN is not set")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
