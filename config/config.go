package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string
	JWTKey string

	EmailSender string
	Password    string // SMTP password
	SMTPHost    string
	SMTPPort    string

	WebhookURL string // optional outbound event webhook

	ReminderCron        string // cron expression for the deadline reminder job
	ReminderWindowHours int    // how far ahead reminders look

	// Risk classification policy. Tunable thresholds, not business law.
	AtRiskProgressBelow int // interns below this progress % are at-risk candidates
	AtRiskElapsedGap    int // elapsed-time % must exceed progress % by this gap
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "3000"),
		DBName: getEnv("DB_NAME", "internhub.db"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),

		WebhookURL: getEnv("WEBHOOK_URL", ""),

		ReminderCron:        getEnv("REMINDER_CRON", "0 8 * * *"),
		ReminderWindowHours: getEnvInt("REMINDER_WINDOW_HOURS", 48),

		AtRiskProgressBelow: getEnvInt("AT_RISK_PROGRESS_BELOW", 70),
		AtRiskElapsedGap:    getEnvInt("AT_RISK_ELAPSED_GAP", 20),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
