package config

import "os"

type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	Environment  string
	LogLevel     string
}

// LoadConfig reads configuration from the environment. The database variables
// are optional: a missing DATABASE_URL only degrades the diagnostics endpoint
// and must never prevent startup.
func LoadConfig() *Config {
	return &Config{
		Port:         getEnvWithDefault("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnvWithDefault("DATABASE_NAME", "kujivinjari"),
		Environment:  getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:     getEnvWithDefault("LOG_LEVEL", "info"),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
