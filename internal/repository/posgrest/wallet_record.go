package posgrest

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nftforge/mint-service/internal/models"
)

// WalletRecordRepository reads the canonical wallet record and flips its
// verification flag. SetVerified touches only the two verification columns;
// accrual timestamps on the same row belong to another subsystem and are
// never part of the update.
type WalletRecordRepository struct {
	*repository[models.WalletRecord]
	db *gorm.DB
}

func NewWalletRecordRepository(db *gorm.DB) *WalletRecordRepository {
	return &WalletRecordRepository{
		repository: New[models.WalletRecord](db),
		db:         db,
	}
}

func (r *WalletRecordRepository) GetByWalletID(ctx context.Context, walletID string) (*models.WalletRecord, error) {
	var record models.WalletRecord
	if err := r.db.WithContext(ctx).Where("wallet_id = ?", walletID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *WalletRecordRepository) SetVerified(ctx context.Context, walletID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.WalletRecord{}).
		Where("wallet_id = ?", walletID).
		Select("is_verified", "last_verification_time").
		Updates(map[string]interface{}{
			"is_verified":            true,
			"last_verification_time": at,
		}).Error
}
