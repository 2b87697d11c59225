package config

import (
	"log/slog"
	"os"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("TACKLE_SERVER_HOST"),
		ServerPort:        getEnvMust("TACKLE_SERVER_PORT"),
		RedisURL:          getEnvMust("TACKLE_REDIS_URL"),
		PostgresURL:       getEnvMust("TACKLE_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("TACKLE_SERVER_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("TACKLE_SERVER_BASIC_AUTH_PASS"),
		Token:             getEnvMust("TACKLE_SERVER_TOKEN"),
		Prefork:           getEnvMustBool("TACKLE_SERVER_PREFORK"),
	}
}

// ClientConfig configures processes that talk to the server, like selfplay.
type ClientConfig struct {
	ServerURL string
	Token     string
}

func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: getEnvMust("TACKLE_SERVER_URL"),
		Token:     getEnvMust("TACKLE_SERVER_TOKEN"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
