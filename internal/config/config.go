package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup. It is built
// once in main and passed to every component; nothing looks at os.Getenv later.
type Config struct {
	Port    string
	BaseURL string
	SiteDir string
	DataDir string

	StripeSecretKey string

	PayPalEnv          string
	PayPalClientID     string
	PayPalClientSecret string

	MailjetPublicKey  string
	MailjetPrivateKey string
	SenderEmail       string
	SenderName        string

	WhatsAppToken         string
	WhatsAppPhoneNumberID string

	RedisAddr string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found — using the process environment")
	} else {
		log.Println("✅ .env file loaded")
	}

	cfg := &Config{
		Port:                  getenv("PORT", "8080"),
		BaseURL:               os.Getenv("BASE_URL"),
		SiteDir:               getenv("SITE_DIR", "site"),
		DataDir:               getenv("DATA_DIR", "data"),
		StripeSecretKey:       os.Getenv("STRIPE_SECRET_KEY"),
		PayPalEnv:             getenv("PAYPAL_ENV", "sandbox"),
		PayPalClientID:        os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret:    os.Getenv("PAYPAL_CLIENT_SECRET"),
		MailjetPublicKey:      os.Getenv("MJ_APIKEY_PUBLIC"),
		MailjetPrivateKey:     os.Getenv("MJ_APIKEY_PRIVATE"),
		SenderEmail:           getenv("MJ_SENDER_EMAIL", "no-reply@altura.com"),
		SenderName:            getenv("MJ_SENDER_NAME", "ALTURA"),
		WhatsAppToken:         os.Getenv("WA_TOKEN"),
		WhatsAppPhoneNumberID: os.Getenv("WA_PHONE_NUMBER_ID"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + cfg.Port
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
