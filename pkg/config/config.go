package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/mdKamrul-h/bulksms-proxy/pkg/utils"
)

// Config holds the process configuration. Loaded once at startup and
// treated as read-only afterwards.
type Config struct {
	APIKey     string
	SenderID   string
	GatewayURL string
	Port       string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	return Config{
		APIKey:     utils.GetEnv("SMS_API_KEY"),
		SenderID:   utils.GetEnv("SMS_SENDER_ID"),
		GatewayURL: utils.GetEnvOr("SMS_GATEWAY_URL", "http://bulksmsbd.net/api"),
		Port:       utils.GetEnvOr("PORT", "3000"),
	}
}
