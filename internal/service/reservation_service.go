package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nftforge/mint-service/config"
	"github.com/nftforge/mint-service/internal/clock"
	"github.com/nftforge/mint-service/internal/models"
)

// ReservationRepo is the durable store for reservations. Save persists the
// whole row so flags and accumulated durations round-trip, unlike a partial
// update.
type ReservationRepo interface {
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	Save(ctx context.Context, reservation *models.Reservation) error
	GetActiveByWallet(ctx context.Context, walletID string) (*models.Reservation, error)
	ActiveSlotNumbers(ctx context.Context) ([]int, error)
	ListActive(ctx context.Context) ([]models.Reservation, error)
}

// ReservationService is the lifecycle manager for mint reservations: slot
// allocation with retry, the payment-window pause, grace-period expiry,
// idempotent completion and push notification of terminal states.
//
// Slot allocation runs under a single mutex so two wallets can never pick the
// same slot. Per-reservation mutexes serialize transitions on one
// reservation; the two locks never nest the other way around.
type ReservationService struct {
	Repo        ReservationRepo
	Publisher   Publisher
	Clock       clock.Clock
	TTL         time.Duration
	GracePeriod time.Duration
	TotalSlots  int
	Retry       config.RetryConfig

	slotMu  sync.Mutex
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewReservationService(
	repo ReservationRepo,
	publisher Publisher,
	clk clock.Clock,
	ttl time.Duration,
	gracePeriod time.Duration,
	totalSlots int,
	retry config.RetryConfig,
) *ReservationService {
	return &ReservationService{
		Repo:        repo,
		Publisher:   publisher,
		Clock:       clk,
		TTL:         ttl,
		GracePeriod: gracePeriod,
		TotalSlots:  totalSlots,
		Retry:       retry,
		locks:       make(map[string]*sync.Mutex),
	}
}

// CreateReservation allocates the next free slot for the wallet and starts
// the countdown. A wallet already holding a non-terminal reservation fails
// fast with AlreadyReserved, without consuming any retry budget. Transient
// allocation failures retry with exponential backoff.
func (s *ReservationService) CreateReservation(ctx context.Context, walletID string) (*models.Reservation, error) {
	if walletID == "" {
		return nil, errors.New("wallet id is required")
	}

	existing, err := s.Repo.GetActiveByWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("looking up active reservation: %w", err)
	}
	if existing != nil {
		if existing.IsExpired(s.Clock.Now(), s.GracePeriod) {
			if err := s.expire(ctx, existing); err != nil {
				return nil, fmt.Errorf("expiring stale reservation: %w", err)
			}
		} else {
			return nil, models.NewAlreadyReservedError(walletID)
		}
	}

	var lastErr error
	for attempt := 0; attempt < s.Retry.MaxAttempts; attempt++ {
		reservation, err := s.allocate(ctx, walletID)
		if err == nil {
			return reservation, nil
		}

		var resErr *models.ReservationError
		if errors.As(err, &resErr) && !resErr.Retryable {
			return nil, err
		}
		lastErr = err

		if attempt == s.Retry.MaxAttempts-1 {
			break
		}

		delay := s.calculateBackoff(attempt)
		logrus.Warnf("reservation create retry %d/%d for wallet %s after %v: %v",
			attempt+1, s.Retry.MaxAttempts, walletID, delay, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during reservation retry: %w", ctx.Err())
		}
	}

	return nil, fmt.Errorf("creating reservation for wallet %s after %d attempts: %w",
		walletID, s.Retry.MaxAttempts, lastErr)
}

// allocate picks the lowest free slot and persists the reservation. The slot
// mutex is the one strict critical section in the service: both the wallet
// exclusivity re-check and the slot pick happen under it, so two concurrent
// creates can neither double-book a slot nor leave one wallet holding two
// active reservations.
func (s *ReservationService) allocate(ctx context.Context, walletID string) (*models.Reservation, error) {
	s.slotMu.Lock()
	defer s.slotMu.Unlock()

	// The pre-lock check in CreateReservation can race another create for the
	// same wallet; only this check is authoritative.
	existing, err := s.Repo.GetActiveByWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("looking up active reservation: %w", err)
	}
	if existing != nil {
		if !existing.IsExpired(s.Clock.Now(), s.GracePeriod) {
			return nil, models.NewAlreadyReservedError(walletID)
		}
		if err := s.expire(ctx, existing); err != nil {
			return nil, fmt.Errorf("expiring stale reservation: %w", err)
		}
	}

	taken, err := s.Repo.ActiveSlotNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing occupied slots: %w", err)
	}

	occupied := make(map[int]struct{}, len(taken))
	for _, slot := range taken {
		occupied[slot] = struct{}{}
	}

	slot := 0
	for candidate := 1; candidate <= s.TotalSlots; candidate++ {
		if _, ok := occupied[candidate]; !ok {
			slot = candidate
			break
		}
	}
	if slot == 0 {
		return nil, models.NewSlotUnavailableError()
	}

	now := s.Clock.Now()
	reservation := &models.Reservation{
		WalletID:   walletID,
		SlotNumber: slot,
		Status:     models.StatusReserved,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.TTL),
	}

	if err := s.Repo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("persisting reservation: %w", err)
	}

	return reservation, nil
}

// OpenPaymentWindow suspends the countdown while an external payment UI is
// open. Opening an already open window is a no-op.
func (s *ReservationService) OpenPaymentWindow(ctx context.Context, reservationID string) (*models.Reservation, error) {
	lock := s.getLock(reservationID)
	lock.Lock()
	defer lock.Unlock()

	reservation, err := s.load(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.IsPaymentWindowOpen {
		return reservation, nil
	}

	switch reservation.Status {
	case models.StatusReserved:
	default:
		return nil, models.NewInvalidTransitionError(reservation.Status, "open the payment window on")
	}

	reservation.Status = models.StatusPaymentOpen
	reservation.IsPaymentWindowOpen = true
	reservation.WindowOpenedAt = s.Clock.Now()

	if err := s.Repo.Save(ctx, reservation); err != nil {
		return nil, fmt.Errorf("persisting payment window open: %w", err)
	}

	return reservation, nil
}

// ClosePaymentWindow folds the open interval into the accumulated duration
// and moves the reservation into awaiting-settlement mode. ExpiresAt itself
// is never mutated, so pause/resume cannot drift.
func (s *ReservationService) ClosePaymentWindow(ctx context.Context, reservationID string) (*models.Reservation, error) {
	lock := s.getLock(reservationID)
	lock.Lock()
	defer lock.Unlock()

	reservation, err := s.load(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status != models.StatusPaymentOpen {
		return nil, models.NewInvalidTransitionError(reservation.Status, "close the payment window on")
	}

	reservation.AccumulatedOpenDuration += s.Clock.Now().Sub(reservation.WindowOpenedAt)
	reservation.IsPaymentWindowOpen = false
	reservation.WindowOpenedAt = time.Time{}
	reservation.Status = models.StatusProcessing

	if err := s.Repo.Save(ctx, reservation); err != nil {
		return nil, fmt.Errorf("persisting payment window close: %w", err)
	}

	return reservation, nil
}

// CompleteReservation marks a processing reservation completed on proof of
// settlement. Completing an already completed reservation returns the
// original result, never an error. The trace id from the settlement event is
// stored on the reservation and rides along on the terminal event.
func (s *ReservationService) CompleteReservation(ctx context.Context, reservationID, proofOfPayment, traceID string) (*models.Reservation, error) {
	lock := s.getLock(reservationID)
	lock.Lock()
	defer lock.Unlock()

	reservation, err := s.load(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Status == models.StatusCompleted {
		return reservation, nil
	}

	if reservation.Status != models.StatusProcessing {
		return nil, models.NewInvalidTransitionError(reservation.Status, "complete")
	}

	reservation.Status = models.StatusCompleted
	reservation.ProofOfPayment = proofOfPayment
	reservation.CompletedAt = s.Clock.Now()
	if traceID != "" {
		reservation.TraceID = traceID
	}

	if err := s.Repo.Save(ctx, reservation); err != nil {
		return nil, fmt.Errorf("persisting completion: %w", err)
	}

	s.publishTerminal(ctx, reservation, "settlement confirmed")

	return reservation, nil
}

// ReleaseReservation is an explicit user cancellation from any non-terminal
// state; the slot frees immediately for reallocation.
func (s *ReservationService) ReleaseReservation(ctx context.Context, reservationID, reason string) (*models.Reservation, error) {
	lock := s.getLock(reservationID)
	lock.Lock()
	defer lock.Unlock()

	reservation, err := s.Repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, models.NewReservationNotFoundError(reservationID)
	}

	if reservation.Status.IsTerminal() {
		return nil, models.NewInvalidTransitionError(reservation.Status, "release")
	}

	reservation.Status = models.StatusReleased
	reservation.IsPaymentWindowOpen = false
	reservation.ReleaseReason = reason

	if err := s.Repo.Save(ctx, reservation); err != nil {
		return nil, fmt.Errorf("persisting release: %w", err)
	}

	s.publishTerminal(ctx, reservation, reason)

	return reservation, nil
}

// GetActiveReservation is the read path clients poll for countdown
// rendering. A reservation found past its grace period is expired in place
// and not returned.
func (s *ReservationService) GetActiveReservation(ctx context.Context, walletID string) (*models.Reservation, error) {
	reservation, err := s.Repo.GetActiveByWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("looking up active reservation: %w", err)
	}
	if reservation == nil {
		return nil, nil
	}

	if reservation.IsExpired(s.Clock.Now(), s.GracePeriod) {
		if err := s.expire(ctx, reservation); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return reservation, nil
}

// SweepExpired expires every reservation past its effective deadline plus
// grace. Reservations with an open payment window are skipped.
func (s *ReservationService) SweepExpired(ctx context.Context) error {
	active, err := s.Repo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("listing active reservations: %w", err)
	}

	now := s.Clock.Now()
	for i := range active {
		reservation := &active[i]
		if !reservation.IsExpired(now, s.GracePeriod) {
			continue
		}

		lock := s.getLock(reservation.ID)
		lock.Lock()
		current, err := s.Repo.GetByID(ctx, reservation.ID)
		if err == nil && current.IsExpired(now, s.GracePeriod) {
			if err := s.expire(ctx, current); err != nil {
				logrus.Errorf("failed to expire reservation %s: %v", current.ID, err)
			}
		}
		lock.Unlock()
	}

	return nil
}

// RunSweeper drives SweepExpired on a fixed interval until the context is
// cancelled.
func (s *ReservationService) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.SweepExpired(ctx); err != nil {
				logrus.Errorf("reservation sweep failed: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *ReservationService) load(ctx context.Context, reservationID string) (*models.Reservation, error) {
	reservation, err := s.Repo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, models.NewReservationNotFoundError(reservationID)
	}

	if reservation.IsExpired(s.Clock.Now(), s.GracePeriod) {
		if err := s.expire(ctx, reservation); err != nil {
			return nil, err
		}
		return nil, models.NewReservationExpiredError(reservationID)
	}

	return reservation, nil
}

func (s *ReservationService) expire(ctx context.Context, reservation *models.Reservation) error {
	reservation.Status = models.StatusExpired
	reservation.IsPaymentWindowOpen = false

	if err := s.Repo.Save(ctx, reservation); err != nil {
		return fmt.Errorf("persisting expiry: %w", err)
	}

	s.publishTerminal(ctx, reservation, "reservation expired, please retry")

	return nil
}

func (s *ReservationService) publishTerminal(ctx context.Context, reservation *models.Reservation, reason string) {
	event := models.ReservationTerminalEvent{
		ReservationID: reservation.ID,
		WalletID:      reservation.WalletID,
		SlotNumber:    reservation.SlotNumber,
		Status:        reservation.Status,
		Reason:        reason,
		TraceID:       reservation.TraceID,
		OccurredAt:    s.Clock.Now(),
	}

	if err := s.Publisher.Publish(ctx, models.ReservationTerminalTopic, event); err != nil {
		logrus.Errorf("failed to publish terminal event for reservation %s: %v", reservation.ID, err)
	}
}

func (s *ReservationService) getLock(reservationID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	if _, ok := s.locks[reservationID]; !ok {
		s.locks[reservationID] = &sync.Mutex{}
	}
	return s.locks[reservationID]
}

func (s *ReservationService) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * s.Retry.BaseDelay

	if delay > s.Retry.MaxDelay {
		delay = s.Retry.MaxDelay
	}

	return delay
}
