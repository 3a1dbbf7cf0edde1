package config

import (
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DEBUG", "")
	t.Setenv("OPS_PORT", "")

	c := FromEnv()
	if c.Debug {
		t.Fatal("debug should default to false")
	}
	if c.OpsPort != "8080" {
		t.Fatalf("expected default ops port 8080, got %s", c.OpsPort)
	}
	if err := c.Validate(); err == nil {
		t.Fatal("missing token should fail validation")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DEBUG", "true")
	t.Setenv("OPS_PORT", "9090")

	c := FromEnv()
	if c.BotToken != "123:abc" {
		t.Fatalf("expected token from env, got %s", c.BotToken)
	}
	if !c.Debug {
		t.Fatal("debug should be enabled")
	}
	if c.OpsPort != "9090" {
		t.Fatalf("expected ops port 9090, got %s", c.OpsPort)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("valid config should validate: %v", err)
	}
}
