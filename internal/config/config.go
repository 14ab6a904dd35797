// Package config reads environment configuration for HashSafe.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds settings read from the environment. Command-line flags
// override these in main.
type Config struct {
	// Theme is the interactive panel theme: dark, light or auto.
	Theme string

	// StartDir is where the panel's file picker opens.
	StartDir string

	// Verbose enables debug logging to stderr.
	Verbose bool
}

// LoadEnv loads a .env file from the working directory if present.
func LoadEnv() {
	_ = godotenv.Load(".env")
}

// FromEnv reads the HASHSAFE_* environment variables.
func FromEnv() Config {
	return Config{
		Theme:    getenvDefault("HASHSAFE_THEME", "auto"),
		StartDir: getenvDefault("HASHSAFE_START_DIR", "."),
		Verbose:  boolEnv("HASHSAFE_VERBOSE"),
	}
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func boolEnv(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	}
	return false
}
