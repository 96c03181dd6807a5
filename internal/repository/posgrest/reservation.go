package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nftforge/mint-service/internal/models"
)

var activeStatuses = []models.ReservationStatus{
	models.StatusCreating,
	models.StatusReserved,
	models.StatusPaymentOpen,
	models.StatusProcessing,
}

// ReservationRepository adds the reservation-specific queries the lifecycle
// manager needs on top of the generic repository: active-per-wallet lookup,
// occupied slot numbers for allocation, and the sweep candidate list.
type ReservationRepository struct {
	*repository[models.Reservation]
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{
		repository: New[models.Reservation](db),
		db:         db,
	}
}

// GetActiveByWallet returns the wallet's single non-terminal reservation, or
// nil when there is none.
func (r *ReservationRepository) GetActiveByWallet(ctx context.Context, walletID string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Where("wallet_id = ? AND status IN ?", walletID, activeStatuses).
		First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ActiveSlotNumbers lists slot numbers held by non-terminal reservations.
func (r *ReservationRepository) ActiveSlotNumbers(ctx context.Context) ([]int, error) {
	var slots []int
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("status IN ?", activeStatuses).
		Pluck("slot_number", &slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

// ListActive returns every non-terminal reservation, for the expiry sweep.
func (r *ReservationRepository) ListActive(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("status IN ?", activeStatuses).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// Save persists the full reservation row, zero values included, so window
// flags and accumulated durations round-trip correctly.
func (r *ReservationRepository) Save(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}
