package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read for flag defaults.
const (
	EnvDB         = "TETRIS_DB"
	EnvConfig     = "TETRIS_CONFIG"
	EnvLogLevel   = "TETRIS_LOG_LEVEL"
	EnvDifficulty = "TETRIS_DIFFICULTY"
	EnvSSHAddr    = "TETRIS_SSH_ADDR"
	EnvSeed       = "TETRIS_SEED"
)

// LoadEnv reads KEY=value pairs from the given .env files (default ".env")
// into the process environment. Variables already set win. Missing files
// are not an error.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	present := make([]string, 0, len(filenames))
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			present = append(present, name)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// EnvOr returns the value of key, or fallback if it is unset or empty.
func EnvOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// EnvInt64Or returns key parsed as an int64, or fallback if unset or invalid.
func EnvInt64Or(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
