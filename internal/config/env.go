// Package config provides shared configuration utilities and game tunables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads delivery settings from dotenv files (".env" when none
// are given). Missing files are skipped and variables already set in the
// environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LogLevel reads LOG_LEVEL (debug, info, warn, error). Unknown or missing
// values fall back to info.
func LogLevel() log.Level {
	level, err := log.ParseLevel(GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
