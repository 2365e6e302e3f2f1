package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the optional runtime settings. The zero-configuration run
// seeds the roster, prints it and exits.
type Config struct {
	// Seed controls whether the built-in students are inserted at startup
	Seed bool
	// ImportFile is an .xlsx roster imported after seeding, if set
	ImportFile string
	// HTTPAddr enables the HTTP API when non-empty
	HTTPAddr string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	seed, err := parseBoolEnv("ROSTER_SEED", true)
	if err != nil {
		return nil, err
	}

	addr, err := parseAddr(strings.TrimSpace(os.Getenv("ROSTER_HTTP_ADDR")))
	if err != nil {
		return nil, err
	}

	return &Config{
		Seed:       seed,
		ImportFile: getEnvOrDefault("ROSTER_IMPORT_FILE", ""),
		HTTPAddr:   addr,
	}, nil
}

// ServeHTTP reports whether the HTTP API should be started
func (c *Config) ServeHTTP() bool {
	return c.HTTPAddr != ""
}

// parseAddr accepts "8080", ":8080" or "127.0.0.1:8080".
func parseAddr(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if strings.Contains(raw, " ") {
		return "", fmt.Errorf("invalid ROSTER_HTTP_ADDR value: %q", raw)
	}
	if strings.Contains(raw, ":") {
		return raw, nil
	}
	if _, err := strconv.Atoi(raw); err != nil {
		return "", fmt.Errorf("invalid ROSTER_HTTP_ADDR value %q: %w", raw, err)
	}
	return ":" + raw, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
