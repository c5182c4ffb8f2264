package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"mwirth/statement-csv/internal/logging"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file if one exists in
// the current or parent directory. Safe to call multiple times; only
// the first call does any work.
func LoadEnv() {
	once.Do(func() {
		log := logging.GetLogger()

		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				log.Debug("no .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			log.WithError(err).Warn("error loading .env file")
			return
		}
		log.Info("loaded environment variables", logging.Field{Key: "file", Value: envFile})
	})
}

// GetEnv retrieves an environment variable with a fallback value.
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// ConfigureLogging builds the process-wide logger from the loaded
// configuration and installs it as the default.
func ConfigureLogging(config *Config) logging.Logger {
	logger := logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
	logging.SetDefaultLogger(logger)
	return logger
}
