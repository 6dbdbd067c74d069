// internal/database/seed.go
package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gpstracker/inventory-backend/internal/models"
)

// SeedInitialData inserts a couple of sample products so a fresh development
// database has something to look at. Safe to call repeatedly.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	sampleProducts := []models.Product{
		{
			Name:        "Tracker Model X",
			SKU:         "GPS-XT-001",
			Description: "Entry level GPS tracker with 4G fallback",
			Category:    models.CategoryGPSTracker,
			CostPrice:   decimal.RequireFromString("45.00"),
			SalePrice:   decimal.RequireFromString("89.99"),
		},
		{
			Name:        "SIM Card Type A",
			SKU:         "SIM-A-001",
			Description: "Multi-network IoT SIM, 10MB/month plan",
			Category:    models.CategorySIMCard,
			CostPrice:   decimal.RequireFromString("1.50"),
			SalePrice:   decimal.RequireFromString("5.00"),
		},
	}

	for _, product := range sampleProducts {
		var count int64
		db.Model(&models.Product{}).Where("sku = ?", product.SKU).Count(&count)

		if count == 0 {
			if err := db.Create(&product).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", product.SKU, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}
