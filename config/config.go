package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs from the environment. It is
// built once in main and passed down explicitly; nothing reads the
// environment after startup.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string
}

// Load reads .env if present, then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getenv("PORT", "8080"),
		MongoURI:  mongoURI(),
		DBName:    getenv("DB_NAME", "shopkart"),
		JWTSecret: getenv("SECRET_KEY", "change-me-in-production"),
	}
}

func mongoURI() string {
	if uri := os.Getenv("MONGO_PUBLIC_URL"); uri != "" {
		return uri
	}
	return getenv("MONGO_URL", "mongodb://localhost:27017")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
