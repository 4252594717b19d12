package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"altura_store/internal/catalog"
	"altura_store/internal/checkout"
	"altura_store/internal/config"
	"altura_store/internal/gateway"
	"altura_store/internal/handlers"
	"altura_store/internal/httpclient"
	"altura_store/internal/middleware"
	"altura_store/internal/notify"
	"altura_store/internal/orders"
	"altura_store/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	catalogPath := filepath.Join(cfg.SiteDir, "products.json")
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		log.Printf("⚠️  Catalog not loaded (%v) — price resolution by slug disabled", err)
	} else {
		log.Printf("✅ Catalog loaded: %d products", len(cat.Products()))
	}

	hc := httpclient.New()

	stripeGW := gateway.NewStripe(cfg.StripeSecretKey, cfg.BaseURL)
	if cfg.StripeSecretKey != "" {
		log.Println("✅ Stripe enabled")
	} else {
		log.Println("⚠️  Stripe not configured")
	}

	paypalGW := gateway.NewPayPal(gateway.PayPalConfig{
		ClientID:     cfg.PayPalClientID,
		ClientSecret: cfg.PayPalClientSecret,
		Env:          cfg.PayPalEnv,
		BaseURL:      cfg.BaseURL,
	}, hc)
	if cfg.PayPalClientID != "" && cfg.PayPalClientSecret != "" {
		log.Printf("✅ PayPal enabled (%s)", cfg.PayPalEnv)
	} else {
		log.Println("⚠️  PayPal not configured")
	}

	mailjet := notify.NewMailjet(cfg.MailjetPublicKey, cfg.MailjetPrivateKey, cfg.SenderEmail, cfg.SenderName)
	if mailjet.Configured() {
		log.Println("✅ Mailjet confirmations enabled")
	}

	recorder, err := orders.NewRecorder(cfg.DataDir, mailjet)
	if err != nil {
		log.Fatal("❌ Cannot initialize order log: ", err)
	}

	whatsApp := notify.NewWhatsApp(cfg.WhatsAppToken, cfg.WhatsAppPhoneNumberID, hc)
	if whatsApp.Configured() {
		log.Println("✅ WhatsApp enabled")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("⚠️  Redis unreachable (%v) — rate limiting disabled", err)
			rdb = nil
		} else {
			log.Println("✅ Redis rate limiting enabled")
		}
		cancel()
	}

	api := &handlers.API{
		Builder:     checkout.NewBuilder(cat),
		Stripe:      stripeGW,
		PayPal:      paypalGW,
		Orders:      recorder,
		WhatsApp:    whatsApp,
		CatalogPath: catalogPath,
		SiteDir:     cfg.SiteDir,
	}

	r := gin.Default()
	routes.RegisterRoutes(r, api, middleware.APIRateLimit(rdb))

	log.Println("🚀 ALTURA server running on", cfg.BaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped: ", err)
	}
}
