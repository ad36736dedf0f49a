package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/cache"
	"github.com/ojohpeters/Farmers-marketplace/cart"
	orderControllers "github.com/ojohpeters/Farmers-marketplace/controllers/order"
	"github.com/ojohpeters/Farmers-marketplace/events"
	"github.com/ojohpeters/Farmers-marketplace/models"
	"github.com/ojohpeters/Farmers-marketplace/orders"
	"github.com/ojohpeters/Farmers-marketplace/repository"
	"github.com/ojohpeters/Farmers-marketplace/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY", "X-Cart-Session"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	deps := routes.Deps{
		DB:        db,
		Carts:     cart.NewManager(),
		Orders:    orders.NewService(repository.NewStore(db)),
		Hub:       orderControllers.NewHub(),
		Publisher: initPublisher(),
		Products:  initProductCache(),
	}
	routes.SetupRoutes(r, deps)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// initProductCache connects Redis when REDIS_ADDR is set; otherwise the
// nil cache passes every lookup straight to the database.
func initProductCache() *cache.ProductCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable (%v), product cache disabled", err)
		return nil
	}
	log.Printf("✅ Product cache connected to Redis at %s", addr)
	return cache.NewProductCache(client)
}

// initPublisher connects RabbitMQ when AMQP_URL is set; a nil publisher
// silently drops order events.
func initPublisher() *events.Publisher {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		return nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		log.Printf("⚠️ RabbitMQ unreachable (%v), order events disabled", err)
		return nil
	}
	publisher, err := events.NewPublisher(conn)
	if err != nil {
		log.Printf("⚠️ Failed to open RabbitMQ channel (%v), order events disabled", err)
		return nil
	}
	log.Println("✅ Order event publisher connected to RabbitMQ")
	return publisher
}
