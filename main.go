package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ldquyen/QuickDish/cart"
	"github.com/ldquyen/QuickDish/middleware"
	"github.com/ldquyen/QuickDish/orders"
	"github.com/ldquyen/QuickDish/payment"
	"github.com/ldquyen/QuickDish/routes"
	"github.com/ldquyen/QuickDish/store"
)

func main() {
	log.Println("✅ Starting QuickDish front-of-house API...")

	// Load environment variables
	_ = godotenv.Load()

	// Remote store client (source of truth for menus and orders)
	storeBaseURL := getEnv("STORE_BASE_URL", "https://68d4945f214be68f8c69a2ca.mockapi.io")
	client := store.NewClient(storeBaseURL)
	log.Printf("🗄️ Remote store: %s", storeBaseURL)

	// Payment QR identity for checkout
	qr := payment.QR{
		Bank:        getEnv("QR_BANK", "TPBank"),
		Account:     getEnv("QR_ACCOUNT", "99797398888"),
		AccountName: getEnv("QR_ACCOUNT_NAME", "QUICKDISH RESTAURANT"),
	}

	deps := routes.Deps{
		Store:  client,
		Carts:  cart.NewStore(),
		Orders: orders.NewService(client),
		QR:     qr,
	}

	// Gin setup
	r := gin.Default()
	r.Use(middleware.RequestID)

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Start server
	port := getEnv("PORT", "8080")
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
