// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the bootstrap logger LoadEnv writes to. ConfigureLoggingFromConfig
	// returns a separate logger built from the loaded Config and leaves this
	// one unchanged.
	Logger = logrus.New()
)

// LoadEnv loads environment variables from a .env file if one exists,
// checking the current directory and then the parent directory. It is a
// no-op (aside from a log line) when no .env file is present, since
// InitializeConfig's Viper loader falls back to environment variables and
// defaults regardless.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				Logger.Info("No .env file found, using environment variables")
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Infof("Loaded environment variables from %s", envFile)
	})
}
