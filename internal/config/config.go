package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Runtime environment ("production" switches the logger to JSON)
	Env string

	// Server
	Port string

	// Session
	LogoutAfter  time.Duration
	TickInterval time.Duration

	// Loans
	LoanDelay time.Duration

	// Seed accounts; empty means the embedded seed set
	SeedFile string

	// Log destination for the terminal UI
	LogFile string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		SeedFile: getEnv("BANKIST_SEED_FILE", ""),
		LogFile:  getEnv("BANKIST_LOG_FILE", "bankist.log"),
	}

	var err error
	if config.LogoutAfter, err = getDuration("BANKIST_LOGOUT_AFTER", 5*time.Minute); err != nil {
		return nil, err
	}
	if config.TickInterval, err = getDuration("BANKIST_TICK_INTERVAL", time.Second); err != nil {
		return nil, err
	}
	if config.LoanDelay, err = getDuration("BANKIST_LOAN_DELAY", 3*time.Second); err != nil {
		return nil, err
	}

	if config.LogoutAfter < config.TickInterval {
		return nil, fmt.Errorf("BANKIST_LOGOUT_AFTER (%v) must not be shorter than BANKIST_TICK_INTERVAL (%v)", config.LogoutAfter, config.TickInterval)
	}

	return config, nil
}

// CountdownTicks returns how many ticks the logout countdown lasts. The
// timer shows the time left, so any tick interval displays real seconds.
func (c *Config) CountdownTicks() int {
	return int(c.LogoutAfter / c.TickInterval)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses a positive duration from the environment.
func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}
