// Command seed wipes and repopulates the marketplace database with the
// demo catalog: an admin, a buyer, the Fruits category and its produce.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the farmers marketplace database with demo data",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		return seed(db)
	},
}

func init() {
	rootCmd.Flags().String("database-url", "", "Postgres connection string (defaults to DATABASE_URL)")
	_ = viper.BindPFlag("database_url", rootCmd.Flags().Lookup("database-url"))
	viper.AutomaticEnv()
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDatabase() (*gorm.DB, error) {
	dsn := viper.GetString("database_url")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			viper.GetString("DB_HOST"), viper.GetString("DB_USER"),
			viper.GetString("DB_PASSWORD"), viper.GetString("DB_NAME"),
			viper.GetString("DB_PORT"),
		)
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func seed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Category{},
		&models.Order{}, &models.OrderItem{},
	); err != nil {
		return err
	}

	// Clear existing data
	for _, model := range []interface{}{
		&models.OrderItem{}, &models.Order{}, &models.Product{},
		&models.Category{}, &models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	log.Println("🧹 Cleared existing data")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), 12)
	if err != nil {
		return err
	}

	users := []models.User{
		{ID: uuid.NewString(), Name: "Admin User", Email: "admin@farmersmarket.com", Password: string(hashed), Role: models.RoleAdmin},
		{ID: uuid.NewString(), Name: "John Doe", Email: "john@example.com", Password: string(hashed), Role: models.RoleBuyer},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	log.Println("👤 Created admin and buyer accounts")

	category := models.Category{Name: "Fruits", Description: "Fresh perishable fruits from local farms"}
	if err := db.Create(&category).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Pineapple", Description: "Sweet and tangy tropical pineapple, rich in vitamin C. Perfect for fresh eating, juices, or desserts.", Price: 700, Category: "Fruits", Quantity: 45, Image: "https://images.unsplash.com/photo-1589820296156-2454bb8a6ad1?w=400&h=300&fit=crop"},
		{Name: "Apples", Description: "Crisp and juicy fresh apples, packed with fiber and antioxidants. Great for snacking or baking.", Price: 500, Category: "Fruits", Quantity: 80, Image: "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=400&h=300&fit=crop"},
		{Name: "Strawberry", Description: "Sweet and juicy strawberries, rich in vitamin C and antioxidants. Perfect for desserts, smoothies, or fresh eating.", Price: 800, Category: "Fruits", Quantity: 30, Image: "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=400&h=300&fit=crop"},
		{Name: "Pawpaw", Description: "Ripe and sweet pawpaw (papaya), rich in vitamins A and C. Great for digestion and immune health.", Price: 550, Category: "Fruits", Quantity: 40, Image: "https://images.unsplash.com/photo-1615485925511-ef3c8e0e0e5e?w=400&h=300&fit=crop"},
		{Name: "Avocados", Description: "Creamy and nutritious avocados, packed with healthy fats and fiber. Perfect for salads, toast, or guacamole.", Price: 900, Category: "Fruits", Quantity: 50, Image: "https://images.unsplash.com/photo-1523049673857-eb18f1d7b578?w=400&h=300&fit=crop"},
		{Name: "Orange", Description: "Fresh and juicy oranges, bursting with vitamin C. Perfect for fresh eating, juicing, or as a healthy snack.", Price: 400, Category: "Fruits", Quantity: 90, Image: "https://images.unsplash.com/photo-1580052614034-c55d20bfee3b?w=400&h=300&fit=crop"},
		{Name: "Bananas", Description: "Sweet and nutritious bananas, perfect for breakfast or as a healthy snack.", Price: 200, Category: "Fruits", Quantity: 100, Image: "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=400&h=300&fit=crop"},
		{Name: "Mangoes", Description: "Sweet, juicy mangoes - the king of fruits. Perfect for smoothies or eating fresh.", Price: 600, Category: "Fruits", Quantity: 35, Image: "https://images.unsplash.com/photo-1605027990121-1c8c5e5e1c5e?w=400&h=300&fit=crop"},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}
	log.Printf("🌾 Seeded %d products in category %q", len(products), category.Name)

	return nil
}
