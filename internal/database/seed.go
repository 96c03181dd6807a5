package database

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/nftforge/mint-service/internal/models"
)

func SeedWalletRecords(db *gorm.DB) error {
	records := []models.WalletRecord{
		{
			ID:        "wr1",
			WalletID:  "wallet_1",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        "wr2",
			WalletID:  "wallet_2",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:         "wr3",
			WalletID:   "wallet_3",
			IsVerified: true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		},
	}

	for _, record := range records {
		result := db.Where(models.WalletRecord{ID: record.ID}).FirstOrCreate(&record)
		if result.Error != nil {
			return result.Error
		}
	}

	log.Println("wallet records seeded successfully")
	return nil
}
