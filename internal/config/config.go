package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable.
type Config struct {
	Env          string  // application environment (e.g. "dev", "prod")
	Port         string  // HTTP port to listen on
	DBHost       string  // database host address
	DBPort       string  // database port number
	DBUser       string  // database username
	DBPass       string  // database password (optional)
	DBName       string  // database name
	DBSSLMode    string  // postgres sslmode (disable, require, ...)
	RoomPriceMax float64 // upper bound on a room's nightly price
}

// Load reads configuration values from environment variables and returns
// a Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),
		Port:         must("APP_PORT"),
		DBHost:       must("DB_HOST"),
		DBPort:       must("DB_PORT"),
		DBUser:       must("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBName:       must("DB_NAME"),
		DBSSLMode:    getenv("DB_SSLMODE", "disable"),
		RoomPriceMax: envFloat("ROOM_PRICE_MAX", 100),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid float for %s: %q", key, v)
	}
	return f
}
