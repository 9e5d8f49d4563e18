package config

import "os"

// ServerConfig holds process-level configuration read from the environment.
type ServerConfig struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	HTTPPort      string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
}

// Load reads server configuration from the environment with local defaults.
func Load() *ServerConfig {
	return &ServerConfig{
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "surveymon"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      getEnvOrDefault("PORT", "8080"),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", "change-me-in-production"),
		AdminUsername: getEnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnvOrDefault("ADMIN_PASSWORD", "password123"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
