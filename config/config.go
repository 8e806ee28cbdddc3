package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries every environment-driven setting. It is loaded once in
// main and passed down explicitly; nothing reads the environment after
// startup.
type Config struct {
	Port           string
	GinMode        string
	SeedSampleData bool
	CORSOrigins    []string

	DigestEnabled  bool
	DigestSchedule string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string
	LeadAlertPhone    string
	LeadAlertMinValue float64

	ArchiveDriver string
	ArchiveDSN    string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", ""),
		SeedSampleData: getEnvBool("SEED_SAMPLE_DATA", true),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),

		DigestEnabled:  getEnvBool("DIGEST_ENABLED", false),
		DigestSchedule: getEnv("DIGEST_SCHEDULE", "0 9 * * *"),

		TwilioAccountSID:  getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:   getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioPhoneNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		LeadAlertPhone:    getEnv("LEAD_ALERT_PHONE", ""),
		LeadAlertMinValue: getEnvFloat("LEAD_ALERT_MIN_VALUE", 10000),

		ArchiveDriver: getEnv("ARCHIVE_DRIVER", ""),
		ArchiveDSN:    getEnv("ARCHIVE_DSN", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using default", key, v)
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid number for %s: %q, using default", key, v)
		return fallback
	}
	return parsed
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
