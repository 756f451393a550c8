package config

import (
	"errors"
	"log/slog"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

var errNoEnvFile = errors.New("no .env file found")

// loadEnvFile loads the first readable file of envFiles into the process
// environment. Variables already set are not overwritten.
func loadEnvFile() (string, error) {
	for _, envPath := range envFiles {
		if err := godotenv.Load(envPath); err == nil {
			slog.Debug("Loaded environment variables", logfields.File(envPath))
			return envPath, nil
		}
	}
	return "", errNoEnvFile
}
