package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	LockTTL         time.Duration
	SweepInterval   time.Duration
	JanitorInterval time.Duration
}

// Load reads configuration from the environment, with a .env file as
// fallback for local runs.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using OS environment")
	}

	return Config{
		Addr:            getEnv("HTTP_ADDR", ":8080"),
		LockTTL:         getDuration("SEAT_LOCK_TTL", 5*time.Second),
		SweepInterval:   getDuration("LOCK_SWEEP_INTERVAL", time.Second),
		JanitorInterval: getDuration("BOOKING_JANITOR_INTERVAL", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s %q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
