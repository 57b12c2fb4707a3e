package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	HistoryLimit      int
	SaveLatency       time.Duration
	SubmitLatency     time.Duration
	SaveFailureRate   float64
	SubmitFailureRate float64
	AutosaveDebounce  time.Duration

	CompanyName    string
	CompanyContact string
	Locale         string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:     os.Getenv("APP_ENV"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),

		HistoryLimit:      getEnvInt("HISTORY_LIMIT", 50),
		SaveLatency:       getEnvDuration("SAVE_LATENCY", time.Second),
		SubmitLatency:     getEnvDuration("SUBMIT_LATENCY", 1500*time.Millisecond),
		SaveFailureRate:   getEnvFloat("SAVE_FAILURE_RATE", 0.10),
		SubmitFailureRate: getEnvFloat("SUBMIT_FAILURE_RATE", 0.05),
		AutosaveDebounce:  getEnvDuration("AUTOSAVE_DEBOUNCE", 30*time.Second),

		CompanyName:    getEnv("COMPANY_NAME", "Mount Meru Soyco Ltd"),
		CompanyContact: getEnv("COMPANY_CONTACT", "+250 788 300 000"),
		Locale:         getEnv("LOCALE", "en"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default %v", key, v, fallback)
		return fallback
	}
	return d
}
