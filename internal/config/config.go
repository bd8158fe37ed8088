package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var (
	envOnce   sync.Once
	envLoaded string
)

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, once per process. Variables already set are not
// overridden. It returns the file that was loaded, or "" if none was.
func LoadEnv() string {
	envOnce.Do(func() {
		envLoaded = loadEnvFile()
	})
	return envLoaded
}

func loadEnvFile() string {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return ""
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		return ""
	}
	return envFile
}
