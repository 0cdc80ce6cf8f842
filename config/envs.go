package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP      string // Host IP for the server
	RESTPort    int    // Port for the REST API
	GinMode     string // Mode for the Gin framework (e.g., release, debug, test)
	BoardCols   int    // Default board width in cells
	BoardRows   int    // Default board height in cells
	WallMin     int    // Default inclusive lower bound for generated walls
	WallMax     int    // Default exclusive upper bound for generated walls
	StepDelayMS int    // Default minimum delay between search steps, in milliseconds
}

// Envs holds the application's configuration loaded from environment
// variables. Load populates it; packages importing config only for the log
// color constants never trigger environment lookups.
var Envs Config

// Load populates Envs from the environment.
func Load() {
	Envs = initConfig()
}

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:      mustGetEnv("HOST_IP"),
		RESTPort:    mustGetEnvAsInt("REST_PORT"),
		GinMode:     getEnvWithDefault("GIN_MODE", "release"),
		BoardCols:   getEnvAsIntWithDefault("BOARD_COLS", 16),
		BoardRows:   getEnvAsIntWithDefault("BOARD_ROWS", 16),
		WallMin:     getEnvAsIntWithDefault("WALL_MIN", 20),
		WallMax:     getEnvAsIntWithDefault("WALL_MAX", 60),
		StepDelayMS: getEnvAsIntWithDefault("STEP_DELAY_MS", 0),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer or returns a default value if not set.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
