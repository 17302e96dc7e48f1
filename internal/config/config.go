package config

import "os"

// Config holds server-level configuration loaded from the environment
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string
}

// Load reads server configuration from the environment with defaults
func Load() *Config {
	return &Config{
		MongoURI:  getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnvOrDefault("MONGO_DB", "remedyai"),
		RedisAddr: getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		HTTPPort:  getEnvOrDefault("PORT", "8080"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
