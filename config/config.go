package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config holds application configuration
type Config struct {
	// Server settings
	ListenAddr string
	LogLevel   string

	// QR-link settings
	PollInterval time.Duration // gateway status poll interval
	LinkTimeout  time.Duration // upper bound for one linking attempt
}

// LoadConfig loads configuration from config.ini file or environment variables
func LoadConfig() *Config {
	config := &Config{
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		PollInterval: getEnvDuration("LINK_POLL_INTERVAL_SECONDS", 3) * time.Second,
		LinkTimeout:  getEnvDuration("LINK_TIMEOUT_MINUTES", 5) * time.Minute,
	}

	// Try to load from config.ini file
	if err := loadFromINI(config); err != nil {
		logrus.Warnf("⚠️  [Config] Failed to load config.ini: %v", err)
		logrus.Info("Using environment variables or defaults")
	}

	return config
}

// loadFromINI loads configuration from config.ini file
func loadFromINI(config *Config) error {
	cfg, err := ini.Load("config.ini")
	if err != nil {
		return err
	}

	if serverSection := cfg.Section("server"); serverSection != nil {
		if addr := serverSection.Key("listen_addr").String(); addr != "" {
			config.ListenAddr = addr
		}
		if level := serverSection.Key("log_level").String(); level != "" {
			config.LogLevel = level
		}
	}

	if linkSection := cfg.Section("link"); linkSection != nil {
		if interval := linkSection.Key("poll_interval_seconds").String(); interval != "" {
			if val, err := strconv.Atoi(interval); err == nil && val > 0 {
				config.PollInterval = time.Duration(val) * time.Second
			}
		}
		if timeout := linkSection.Key("timeout_minutes").String(); timeout != "" {
			if val, err := strconv.Atoi(timeout); err == nil && val > 0 {
				config.LinkTimeout = time.Duration(val) * time.Minute
			}
		}
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets a numeric environment variable or returns a default value
func getEnvDuration(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if val, err := strconv.Atoi(value); err == nil && val > 0 {
			return time.Duration(val)
		}
	}
	return time.Duration(defaultValue)
}
