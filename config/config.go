package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	ServerPort string
	Issuer     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	SmtpHost   string
	SmtpPort   string
	SmtpUser   string
	SmtpPass   string
	MailSender string

	ReminderUrgentMinutes        int
	ReminderNormalHours          int
	ReminderCheckIntervalSeconds int
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "syncbridge")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "syncbridge")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "syncbridge-files")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	SmtpHost = getEnv("SMTP_HOST", "localhost")
	SmtpPort = getEnv("SMTP_PORT", "25")
	SmtpUser = getEnv("SMTP_USER", "")
	SmtpPass = getEnv("SMTP_PASS", "")
	MailSender = getEnv("MAIL_SENDER", "bridge-no-reply@localhost")

	ReminderUrgentMinutes = getEnvInt("REMINDER_URGENT_MINUTES", 5)
	ReminderNormalHours = getEnvInt("REMINDER_NORMAL_HOURS", 48)
	ReminderCheckIntervalSeconds = getEnvInt("REMINDER_CHECK_INTERVAL_SECONDS", 60)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
