package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables consulted for CLI defaults.
const (
	EnvConfigPath = "RPSLS_CONFIG"
	EnvOutputDir  = "RPSLS_OUTPUT_DIR"
	EnvSeed       = "RPSLS_SEED"
)

// LoadEnv reads KEY=VALUE files into the process environment.
// Missing files are skipped and variables already set are kept.
// With no arguments it reads ".env" in the working directory.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// EnvString returns the variable's value, or fallback when unset or empty.
func EnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvInt64 parses the variable as an integer, or returns fallback when unset.
func EnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("parsing %s: %w", key, err)
	}
	return n, nil
}
