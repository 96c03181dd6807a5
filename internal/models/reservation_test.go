package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nftforge/mint-service/internal/models"
)

func TestReservationStatus_IsTerminal(t *testing.T) {
	assert.True(t, models.StatusCompleted.IsTerminal())
	assert.True(t, models.StatusReleased.IsTerminal())
	assert.True(t, models.StatusExpired.IsTerminal())

	assert.False(t, models.StatusCreating.IsTerminal())
	assert.False(t, models.StatusReserved.IsTerminal())
	assert.False(t, models.StatusPaymentOpen.IsTerminal())
	assert.False(t, models.StatusProcessing.IsTerminal())
}

func TestEffectiveDeadline_ShiftsByAccumulatedOpenTime(t *testing.T) {
	expires := time.Now()
	r := models.Reservation{
		ExpiresAt:               expires,
		AccumulatedOpenDuration: 2 * time.Minute,
	}

	assert.Equal(t, expires.Add(2*time.Minute), r.EffectiveDeadline())
}

func TestIsExpired_WithinGrace(t *testing.T) {
	now := time.Now()
	r := models.Reservation{
		Status:    models.StatusReserved,
		ExpiresAt: now.Add(-10 * time.Second),
	}

	assert.False(t, r.IsExpired(now, 30*time.Second))
}

func TestIsExpired_PastGrace(t *testing.T) {
	now := time.Now()
	r := models.Reservation{
		Status:    models.StatusReserved,
		ExpiresAt: now.Add(-31 * time.Second),
	}

	assert.True(t, r.IsExpired(now, 30*time.Second))
}

func TestIsExpired_NeverWhileWindowOpen(t *testing.T) {
	now := time.Now()
	r := models.Reservation{
		Status:              models.StatusPaymentOpen,
		ExpiresAt:           now.Add(-time.Hour),
		IsPaymentWindowOpen: true,
	}

	assert.False(t, r.IsExpired(now, 30*time.Second))
}

func TestIsExpired_NeverWhenTerminal(t *testing.T) {
	now := time.Now()
	r := models.Reservation{
		Status:    models.StatusCompleted,
		ExpiresAt: now.Add(-time.Hour),
	}

	assert.False(t, r.IsExpired(now, 30*time.Second))
}

func TestRemainingTime_CountsDown(t *testing.T) {
	now := time.Now()
	r := models.Reservation{
		Status:    models.StatusReserved,
		ExpiresAt: now.Add(3 * time.Minute),
	}

	assert.Equal(t, 3*time.Minute, r.RemainingTime(now))
	assert.Equal(t, 2*time.Minute, r.RemainingTime(now.Add(time.Minute)))
}

func TestRemainingTime_FrozenWhileWindowOpen(t *testing.T) {
	now := time.Now()
	r := models.Reservation{
		Status:              models.StatusPaymentOpen,
		ExpiresAt:           now.Add(3 * time.Minute),
		IsPaymentWindowOpen: true,
		WindowOpenedAt:      now,
	}

	assert.Equal(t, 3*time.Minute, r.RemainingTime(now))
	assert.Equal(t, 3*time.Minute, r.RemainingTime(now.Add(10*time.Minute)))
}

func TestRemainingTime_FloorsAtZero(t *testing.T) {
	now := time.Now()
	r := models.Reservation{
		Status:    models.StatusReserved,
		ExpiresAt: now.Add(-time.Minute),
	}

	assert.Equal(t, time.Duration(0), r.RemainingTime(now))
}
