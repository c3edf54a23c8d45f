package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	Server        ServerConfig       `mapstructure:"server"`
	Integrations  IntegrationConfig  `mapstructure:"integrations"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IntegrationConfig holds settings for external services.
type IntegrationConfig struct {
	AWS struct {
		Region string `mapstructure:"region"`
		SES    struct {
			Enabled   bool   `mapstructure:"enabled"`
			FromEmail string `mapstructure:"from_email"`
			FromName  string `mapstructure:"from_name"`
		} `mapstructure:"ses"`
	} `mapstructure:"aws"`
}

// EmailConfigured reports whether a usable email credential is present.
// The placeholder values from the sample .env count as unconfigured so a
// fresh deployment short-circuits to the phone-fallback response instead of
// calling the provider with a credential guaranteed to fail.
func (i IntegrationConfig) EmailConfigured() bool {
	if !i.AWS.SES.Enabled || i.AWS.SES.FromEmail == "" {
		return false
	}
	key := os.Getenv("AWS_ACCESS_KEY_ID")
	if key == "" || strings.HasPrefix(key, "your-") || key == "changeme" {
		return false
	}
	return true
}

// NotificationConfig holds settings for the quote-request notification email.
type NotificationConfig struct {
	Email struct {
		// ToEmail is the single business inbox every lead is delivered to.
		ToEmail string `mapstructure:"to_email"`
		Timeout int    `mapstructure:"timeout"` // milliseconds
	} `mapstructure:"email"`
}

// SendTimeout returns the outbound email deadline.
func (n NotificationConfig) SendTimeout() time.Duration {
	if n.Email.Timeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(n.Email.Timeout) * time.Millisecond
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
