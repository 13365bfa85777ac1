package config

import (
	"fmt"
	"os"
)

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := os.Getenv("DATABASE_TIMEZONE")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func PaystackSecretKey() string {
	return os.Getenv("PAYSTACK_SECRET_KEY")
}

func PaystackPublicKey() string {
	return os.Getenv("PAYSTACK_PUBLIC_KEY")
}

// PaystackLiveMode reports whether a real secret key is configured;
// anything else routes payments through the mock flow.
func PaystackLiveMode() bool {
	key := PaystackSecretKey()
	return len(key) > 3 && key[:3] == "sk_"
}

func AmadeusAPIKey() string {
	return os.Getenv("AMADEUS_API_KEY")
}

func AmadeusAPISecret() string {
	return os.Getenv("AMADEUS_API_SECRET")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func SenderEmail() string {
	sender := os.Getenv("SENDER_EMAIL")
	if sender == "" {
		sender = "bookings@fostertours.com"
	}
	return sender
}

func SessionExchangeURL() string {
	url := os.Getenv("SESSION_EXCHANGE_URL")
	if url == "" {
		url = "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"
	}
	return url
}

const (
	DATE_PARSE_FORMAT   = "2006-01-02"
	TIME_PARSE_FORMAT   = "2006-01-02 15:04:05 -07:00"
	SESSION_COOKIE_NAME = "session_token"
	SESSION_TTL_DAYS    = 7
	CHATBOT_MAX_TURNS   = 10
)
