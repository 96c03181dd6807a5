package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nftforge/mint-service/internal/handlers"
	"github.com/nftforge/mint-service/internal/handlers/mocks"
	"github.com/nftforge/mint-service/internal/models"
)

func newReservationRouter(h *handlers.ReservationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/reservations")
	group.POST("", h.CreateReservation)
	group.POST("/:id/payment-window/open", h.OpenPaymentWindow)
	group.POST("/:id/release", h.ReleaseReservation)
	group.GET("/active/:walletId", h.GetActiveReservation)
	return router
}

func TestHandleEvents_SettlementDetected(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)

	event := models.SettlementDetectedEvent{
		ReservationID:  "res-123",
		ProofOfPayment: "tx-abc",
		TraceID:        "trace-789",
	}
	eventBytes, err := json.Marshal(event)
	assert.NoError(t, err)

	ctx := context.Background()
	mockService.EXPECT().
		CompleteReservation(ctx, "res-123", "tx-abc", "trace-789").
		Return(&models.Reservation{ID: "res-123", Status: models.StatusCompleted}, nil).
		Once()

	err = h.HandleEvents(ctx, models.SettlementTopic2Subscribe, eventBytes)

	assert.NoError(t, err)
	mockService.AssertExpectations(t)
}

func TestHandleEvents_UnmarshalError(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)

	invalidJSON := []byte(`{"invalid json`)

	err := h.HandleEvents(context.Background(), models.SettlementTopic2Subscribe, invalidJSON)

	assert.Error(t, err)
	mockService.AssertNotCalled(t, "CompleteReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleEvents_TopicNotAllowed(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)

	err := h.HandleEvents(context.Background(), "payments.created", []byte(`{}`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "topic not allowed")
	mockService.AssertNotCalled(t, "CompleteReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleEvents_ServiceError(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)

	event := models.SettlementDetectedEvent{ReservationID: "res-123", ProofOfPayment: "tx-abc"}
	eventBytes, err := json.Marshal(event)
	assert.NoError(t, err)

	ctx := context.Background()
	mockService.EXPECT().
		CompleteReservation(ctx, "res-123", "tx-abc", "").
		Return(nil, models.NewInvalidTransitionError(models.StatusReserved, "complete")).
		Once()

	err = h.HandleEvents(ctx, models.SettlementTopic2Subscribe, eventBytes)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "res-123")
}

func TestCreateReservation_Created(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)
	router := newReservationRouter(h)

	mockService.EXPECT().
		CreateReservation(mock.Anything, "W1").
		Return(&models.Reservation{
			ID:         "res-1",
			WalletID:   "W1",
			SlotNumber: 3,
			Status:     models.StatusReserved,
			ExpiresAt:  time.Now().Add(10 * time.Minute),
		}, nil).
		Once()

	body := bytes.NewBufferString(`{"wallet_id":"W1"}`)
	req := httptest.NewRequest(http.MethodPost, "/reservations", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"slot_number":3`)
}

func TestCreateReservation_MissingWalletID(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)
	router := newReservationRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
}

func TestCreateReservation_AlreadyReservedConflict(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)
	router := newReservationRouter(h)

	mockService.EXPECT().
		CreateReservation(mock.Anything, "W1").
		Return(nil, models.NewAlreadyReservedError("W1")).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBufferString(`{"wallet_id":"W1"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"retryable":false`)
}

func TestCreateReservation_SlotUnavailable(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)
	router := newReservationRouter(h)

	mockService.EXPECT().
		CreateReservation(mock.Anything, "W1").
		Return(nil, models.NewSlotUnavailableError()).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBufferString(`{"wallet_id":"W1"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"retryable":true`)
}

func TestOpenPaymentWindow_Expired(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)
	router := newReservationRouter(h)

	mockService.EXPECT().
		OpenPaymentWindow(mock.Anything, "res-1").
		Return(nil, models.NewReservationExpiredError("res-1")).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/reservations/res-1/payment-window/open", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusGone, recorder.Code)
}

func TestReleaseReservation_NotFound(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)
	router := newReservationRouter(h)

	mockService.EXPECT().
		ReleaseReservation(mock.Anything, "res-9", "user cancelled").
		Return(nil, models.NewReservationNotFoundError("res-9")).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/reservations/res-9/release", bytes.NewBufferString(`{"reason":"user cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetActiveReservation_NoneActive(t *testing.T) {
	mockService := mocks.NewMockReservationService(t)
	h := handlers.NewReservationHandler(mockService)
	router := newReservationRouter(h)

	mockService.EXPECT().
		GetActiveReservation(mock.Anything, "W1").
		Return(nil, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/reservations/active/W1", nil)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"reservation":null`)
}
