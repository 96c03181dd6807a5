package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nftforge/mint-service/config"
	"github.com/nftforge/mint-service/internal/models"
	"github.com/nftforge/mint-service/internal/service"
	"github.com/nftforge/mint-service/internal/service/mocks"
)

type reservationFixture struct {
	repo      *mocks.MockReservationRepo
	publisher *mocks.MockPublisher
	clock     *fakeClock
	service   *service.ReservationService
}

func newReservationFixture(t *testing.T, totalSlots int) *reservationFixture {
	f := &reservationFixture{
		repo:      mocks.NewMockReservationRepo(t),
		publisher: mocks.NewMockPublisher(t),
		clock:     &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.service = service.NewReservationService(
		f.repo,
		f.publisher,
		f.clock,
		10*time.Minute,
		30*time.Second,
		totalSlots,
		config.RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		},
	)
	return f
}

func TestCreateReservation_AllocatesLowestFreeSlot(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(nil, nil)
	f.repo.EXPECT().ActiveSlotNumbers(mock.Anything).Return([]int{1, 2, 4}, nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	reservation, err := f.service.CreateReservation(context.Background(), "W1")

	assert.NoError(t, err)
	assert.Equal(t, 3, reservation.SlotNumber)
	assert.Equal(t, models.StatusReserved, reservation.Status)
	assert.Equal(t, f.clock.now.Add(10*time.Minute), reservation.ExpiresAt)
	assert.False(t, reservation.IsPaymentWindowOpen)
}

func TestCreateReservation_EmptyWalletID(t *testing.T) {
	f := newReservationFixture(t, 100)

	_, err := f.service.CreateReservation(context.Background(), "")

	assert.Error(t, err)
	f.repo.AssertNotCalled(t, "GetActiveByWallet", mock.Anything, mock.Anything)
}

func TestCreateReservation_AlreadyReservedFailsFast(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(&models.Reservation{
		ID:        "res-1",
		WalletID:  "W1",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(5 * time.Minute),
	}, nil)

	_, err := f.service.CreateReservation(context.Background(), "W1")

	var resErr *models.ReservationError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, models.ErrAlreadyReserved, resErr.Kind)
	assert.False(t, resErr.Retryable)
	f.repo.AssertNotCalled(t, "ActiveSlotNumbers", mock.Anything)
}

func TestCreateReservation_ExpiredHoldIsSweptThenReallocated(t *testing.T) {
	f := newReservationFixture(t, 100)
	stale := &models.Reservation{
		ID:        "res-old",
		WalletID:  "W1",
		SlotNumber: 7,
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(-time.Minute),
	}
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(stale, nil).Once()
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(nil, nil)
	f.repo.EXPECT().Save(mock.Anything, stale).Return(nil)
	f.publisher.EXPECT().Publish(mock.Anything, models.ReservationTerminalTopic, mock.Anything).Return(nil)
	f.repo.EXPECT().ActiveSlotNumbers(mock.Anything).Return(nil, nil)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	reservation, err := f.service.CreateReservation(context.Background(), "W1")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusExpired, stale.Status)
	assert.Equal(t, 1, reservation.SlotNumber)
}

func TestCreateReservation_RetriesUntilSlotFrees(t *testing.T) {
	f := newReservationFixture(t, 2)
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(nil, nil)
	f.repo.EXPECT().ActiveSlotNumbers(mock.Anything).Return([]int{1, 2}, nil).Once()
	f.repo.EXPECT().ActiveSlotNumbers(mock.Anything).Return([]int{1}, nil).Once()
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	reservation, err := f.service.CreateReservation(context.Background(), "W1")

	assert.NoError(t, err)
	assert.Equal(t, 2, reservation.SlotNumber)
}

func TestCreateReservation_ExhaustsRetryBudget(t *testing.T) {
	f := newReservationFixture(t, 1)
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(nil, nil)
	f.repo.EXPECT().ActiveSlotNumbers(mock.Anything).Return([]int{1}, nil).Times(3)

	_, err := f.service.CreateReservation(context.Background(), "W1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	var resErr *models.ReservationError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, models.ErrSlotUnavailable, resErr.Kind)
}

// memoryReservationRepo is a thread-safe in-memory ReservationRepo. The
// barrier holds the first two GetActiveByWallet calls until both callers have
// arrived, forcing two concurrent creates past the fail-fast check together.
type memoryReservationRepo struct {
	mu           sync.Mutex
	reservations map[string]*models.Reservation
	nextID       int

	barrier   *sync.WaitGroup
	barrierMu sync.Mutex
	released  int
}

func newMemoryReservationRepo(barrier *sync.WaitGroup) *memoryReservationRepo {
	return &memoryReservationRepo{
		reservations: make(map[string]*models.Reservation),
		barrier:      barrier,
	}
}

func (r *memoryReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	reservation.ID = fmt.Sprintf("res-%d", r.nextID)
	stored := *reservation
	r.reservations[reservation.ID] = &stored
	return nil
}

func (r *memoryReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reservation, ok := r.reservations[id]
	if !ok {
		return nil, fmt.Errorf("reservation %s not found", id)
	}
	copied := *reservation
	return &copied, nil
}

func (r *memoryReservationRepo) Save(ctx context.Context, reservation *models.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *reservation
	r.reservations[reservation.ID] = &stored
	return nil
}

func (r *memoryReservationRepo) GetActiveByWallet(ctx context.Context, walletID string) (*models.Reservation, error) {
	r.barrierMu.Lock()
	hold := r.released < 2
	r.released++
	r.barrierMu.Unlock()
	if hold {
		r.barrier.Done()
		r.barrier.Wait()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reservation := range r.reservations {
		if reservation.WalletID == walletID && !reservation.Status.IsTerminal() {
			copied := *reservation
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryReservationRepo) ActiveSlotNumbers(ctx context.Context) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var slots []int
	for _, reservation := range r.reservations {
		if !reservation.Status.IsTerminal() {
			slots = append(slots, reservation.SlotNumber)
		}
	}
	return slots, nil
}

func (r *memoryReservationRepo) ListActive(ctx context.Context) ([]models.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var active []models.Reservation
	for _, reservation := range r.reservations {
		if !reservation.Status.IsTerminal() {
			active = append(active, *reservation)
		}
	}
	return active, nil
}

func (r *memoryReservationRepo) activeCount(walletID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, reservation := range r.reservations {
		if reservation.WalletID == walletID && !reservation.Status.IsTerminal() {
			count++
		}
	}
	return count
}

func TestCreateReservation_ConcurrentCreatesSameWallet(t *testing.T) {
	var barrier sync.WaitGroup
	barrier.Add(2)
	repo := newMemoryReservationRepo(&barrier)
	svc := service.NewReservationService(
		repo,
		mocks.NewMockPublisher(t),
		&fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		10*time.Minute,
		30*time.Second,
		100,
		config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond},
	)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateReservation(context.Background(), "W1")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var resErr *models.ReservationError
		assert.ErrorAs(t, err, &resErr)
		assert.Equal(t, models.ErrAlreadyReserved, resErr.Kind)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, repo.activeCount("W1"), "one wallet must never hold two active reservations")
}

func TestOpenPaymentWindow_SuspendsCountdown(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:        "res-1",
		WalletID:  "W1",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(5 * time.Minute),
	}, nil)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	reservation, err := f.service.OpenPaymentWindow(context.Background(), "res-1")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusPaymentOpen, reservation.Status)
	assert.True(t, reservation.IsPaymentWindowOpen)
	assert.Equal(t, f.clock.now, reservation.WindowOpenedAt)
}

func TestOpenPaymentWindow_AlreadyOpenIsNoop(t *testing.T) {
	f := newReservationFixture(t, 100)
	openedAt := f.clock.now.Add(-time.Minute)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:                  "res-1",
		Status:              models.StatusPaymentOpen,
		IsPaymentWindowOpen: true,
		WindowOpenedAt:      openedAt,
		ExpiresAt:           f.clock.now.Add(5 * time.Minute),
	}, nil)

	reservation, err := f.service.OpenPaymentWindow(context.Background(), "res-1")

	assert.NoError(t, err)
	assert.Equal(t, openedAt, reservation.WindowOpenedAt)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestOpenPaymentWindow_RejectedAfterPaymentClosed(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:        "res-1",
		Status:    models.StatusProcessing,
		ExpiresAt: f.clock.now.Add(5 * time.Minute),
	}, nil)

	_, err := f.service.OpenPaymentWindow(context.Background(), "res-1")

	var resErr *models.ReservationError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, models.ErrInvalidTransition, resErr.Kind)
}

func TestOpenPaymentWindow_UnknownReservation(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-9").Return(nil, assert.AnError)

	_, err := f.service.OpenPaymentWindow(context.Background(), "res-9")

	var resErr *models.ReservationError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, models.ErrReservationGone, resErr.Kind)
}

func TestOpenPaymentWindow_ExpiredReservation(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:        "res-1",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(-time.Minute),
	}, nil)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	f.publisher.EXPECT().Publish(mock.Anything, models.ReservationTerminalTopic, mock.Anything).Return(nil)

	_, err := f.service.OpenPaymentWindow(context.Background(), "res-1")

	var resErr *models.ReservationError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, models.ErrReservationLapsed, resErr.Kind)
}

func TestClosePaymentWindow_FoldsOpenInterval(t *testing.T) {
	f := newReservationFixture(t, 100)
	expiresAt := f.clock.now.Add(3 * time.Minute)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:                  "res-1",
		Status:              models.StatusPaymentOpen,
		IsPaymentWindowOpen: true,
		WindowOpenedAt:      f.clock.now.Add(-2 * time.Minute),
		ExpiresAt:           expiresAt,
	}, nil)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	reservation, err := f.service.ClosePaymentWindow(context.Background(), "res-1")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, reservation.Status)
	assert.False(t, reservation.IsPaymentWindowOpen)
	assert.Equal(t, 2*time.Minute, reservation.AccumulatedOpenDuration)
	assert.Equal(t, expiresAt, reservation.ExpiresAt, "ExpiresAt is never rewritten")
	assert.Equal(t, expiresAt.Add(2*time.Minute), reservation.EffectiveDeadline())
}

func TestClosePaymentWindow_RequiresOpenWindow(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:        "res-1",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(5 * time.Minute),
	}, nil)

	_, err := f.service.ClosePaymentWindow(context.Background(), "res-1")

	var resErr *models.ReservationError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, models.ErrInvalidTransition, resErr.Kind)
}

func TestCompleteReservation_FromProcessing(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:        "res-1",
		WalletID:  "W1",
		SlotNumber: 4,
		Status:    models.StatusProcessing,
		ExpiresAt: f.clock.now.Add(5 * time.Minute),
	}, nil)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	var event models.ReservationTerminalEvent
	f.publisher.EXPECT().Publish(mock.Anything, models.ReservationTerminalTopic, mock.Anything).
		Run(func(ctx context.Context, topic string, message interface{}) {
			event = message.(models.ReservationTerminalEvent)
		}).Return(nil)

	reservation, err := f.service.CompleteReservation(context.Background(), "res-1", "tx-abc", "trace-789")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, reservation.Status)
	assert.Equal(t, "tx-abc", reservation.ProofOfPayment)
	assert.Equal(t, "trace-789", reservation.TraceID)
	assert.Equal(t, f.clock.now, reservation.CompletedAt)
	assert.Equal(t, models.StatusCompleted, event.Status)
	assert.Equal(t, 4, event.SlotNumber)
	assert.Equal(t, "trace-789", event.TraceID)
}

func TestCompleteReservation_Idempotent(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:             "res-1",
		Status:         models.StatusCompleted,
		ProofOfPayment: "tx-abc",
		ExpiresAt:      f.clock.now.Add(-time.Hour),
	}, nil).Times(2)

	first, err := f.service.CompleteReservation(context.Background(), "res-1", "tx-abc", "")
	assert.NoError(t, err)

	second, err := f.service.CompleteReservation(context.Background(), "res-1", "tx-other", "trace-late")
	assert.NoError(t, err)

	assert.Equal(t, "tx-abc", first.ProofOfPayment)
	assert.Equal(t, "tx-abc", second.ProofOfPayment)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteReservation_RequiresProcessing(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:        "res-1",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(5 * time.Minute),
	}, nil)

	_, err := f.service.CompleteReservation(context.Background(), "res-1", "tx-abc", "")

	var resErr *models.ReservationError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, models.ErrInvalidTransition, resErr.Kind)
}

func TestReleaseReservation_FreesSlotAndNotifies(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:        "res-1",
		WalletID:  "W1",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(5 * time.Minute),
	}, nil)
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	var event models.ReservationTerminalEvent
	f.publisher.EXPECT().Publish(mock.Anything, models.ReservationTerminalTopic, mock.Anything).
		Run(func(ctx context.Context, topic string, message interface{}) {
			event = message.(models.ReservationTerminalEvent)
		}).Return(nil)

	reservation, err := f.service.ReleaseReservation(context.Background(), "res-1", "changed my mind")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusReleased, reservation.Status)
	assert.Equal(t, "changed my mind", reservation.ReleaseReason)
	assert.Equal(t, "changed my mind", event.Reason)
}

func TestReleaseReservation_TerminalIsRejected(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetByID(mock.Anything, "res-1").Return(&models.Reservation{
		ID:        "res-1",
		Status:    models.StatusCompleted,
		ExpiresAt: f.clock.now.Add(-time.Hour),
	}, nil)

	_, err := f.service.ReleaseReservation(context.Background(), "res-1", "too late")

	var resErr *models.ReservationError
	assert.ErrorAs(t, err, &resErr)
	assert.Equal(t, models.ErrInvalidTransition, resErr.Kind)
}

func TestGetActiveReservation_WithinGraceIsStillReturned(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(&models.Reservation{
		ID:        "res-1",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(-10 * time.Second),
	}, nil)

	reservation, err := f.service.GetActiveReservation(context.Background(), "W1")

	assert.NoError(t, err)
	assert.NotNil(t, reservation)
}

func TestGetActiveReservation_ExpiresStaleInPlace(t *testing.T) {
	f := newReservationFixture(t, 100)
	stale := &models.Reservation{
		ID:        "res-1",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(-31 * time.Second),
	}
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(stale, nil)
	f.repo.EXPECT().Save(mock.Anything, stale).Return(nil)
	f.publisher.EXPECT().Publish(mock.Anything, models.ReservationTerminalTopic, mock.Anything).Return(nil)

	reservation, err := f.service.GetActiveReservation(context.Background(), "W1")

	assert.NoError(t, err)
	assert.Nil(t, reservation)
	assert.Equal(t, models.StatusExpired, stale.Status)
}

func TestGetActiveReservation_NoneFound(t *testing.T) {
	f := newReservationFixture(t, 100)
	f.repo.EXPECT().GetActiveByWallet(mock.Anything, "W1").Return(nil, nil)

	reservation, err := f.service.GetActiveReservation(context.Background(), "W1")

	assert.NoError(t, err)
	assert.Nil(t, reservation)
}

func TestSweepExpired_ExpiresOnlyStaleReservations(t *testing.T) {
	f := newReservationFixture(t, 100)
	stale := models.Reservation{
		ID:        "res-stale",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(-time.Minute),
	}
	fresh := models.Reservation{
		ID:        "res-fresh",
		Status:    models.StatusReserved,
		ExpiresAt: f.clock.now.Add(5 * time.Minute),
	}
	paused := models.Reservation{
		ID:                  "res-paused",
		Status:              models.StatusPaymentOpen,
		IsPaymentWindowOpen: true,
		ExpiresAt:           f.clock.now.Add(-time.Hour),
	}
	f.repo.EXPECT().ListActive(mock.Anything).Return([]models.Reservation{stale, fresh, paused}, nil)

	staleCopy := stale
	f.repo.EXPECT().GetByID(mock.Anything, "res-stale").Return(&staleCopy, nil)
	f.repo.EXPECT().Save(mock.Anything, &staleCopy).Return(nil)
	f.publisher.EXPECT().Publish(mock.Anything, models.ReservationTerminalTopic, mock.Anything).Return(nil)

	err := f.service.SweepExpired(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, models.StatusExpired, staleCopy.Status)
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, "res-fresh")
	f.repo.AssertNotCalled(t, "GetByID", mock.Anything, "res-paused")
}
