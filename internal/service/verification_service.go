package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nftforge/mint-service/internal/cache"
	"github.com/nftforge/mint-service/internal/clock"
	"github.com/nftforge/mint-service/internal/diff"
	"github.com/nftforge/mint-service/internal/ledger"
	"github.com/nftforge/mint-service/internal/models"
)

// LedgerGateway fetches ground-truth holdings for a wallet and reports which
// provider answered.
type LedgerGateway interface {
	FetchHoldings(ctx context.Context, walletID, secondaryAddress string) ([]models.VerifiedAsset, string, *ledger.FetchError)
}

// RateLimiter throttles verification requests per wallet.
type RateLimiter interface {
	Allow(walletID string) bool
}

// ResultCache memoizes verification outcomes per wallet.
type ResultCache interface {
	Get(walletID string) (cache.Entry, bool)
	Put(walletID string, payload *models.VerificationResult)
	Clear() int
}

// WalletRecordRepo reads the canonical wallet record and flips its
// verification flag without touching unrelated columns.
type WalletRecordRepo interface {
	GetByWalletID(ctx context.Context, walletID string) (*models.WalletRecord, error)
	SetVerified(ctx context.Context, walletID string, at time.Time) error
}

// AuditRepo appends verification outcomes to the audit log.
type AuditRepo interface {
	Create(ctx context.Context, record *models.AuditRecord) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// VerificationService orchestrates the ownership verification pipeline:
// rate-limit, cache lookup, ledger fetch, diff, cache store, audit write and
// the idempotent status update. Audit and status-update failures after a
// settled verdict are logged and swallowed, never surfaced to the caller.
type VerificationService struct {
	Gateway    LedgerGateway
	Limiter    RateLimiter
	Cache      ResultCache
	WalletRepo WalletRecordRepo
	AuditRepo  AuditRepo
	Publisher  Publisher
	Clock      clock.Clock
}

func NewVerificationService(
	gateway LedgerGateway,
	limiter RateLimiter,
	resultCache ResultCache,
	walletRepo WalletRecordRepo,
	auditRepo AuditRepo,
	publisher Publisher,
	clk clock.Clock,
) *VerificationService {
	return &VerificationService{
		Gateway:    gateway,
		Limiter:    limiter,
		Cache:      resultCache,
		WalletRepo: walletRepo,
		AuditRepo:  auditRepo,
		Publisher:  publisher,
		Clock:      clk,
	}
}

// VerifyOwnership runs the full pipeline for one wallet. Every failure mode
// comes back as an ordinary VerificationResult carrying retryable hints, so
// calling UIs can implement backoff without inspecting errors.
func (s *VerificationService) VerifyOwnership(
	ctx context.Context,
	walletID string,
	secondaryAddress string,
	traceID string,
	claimed []models.ClaimedAsset,
) *models.VerificationResult {
	if !s.Limiter.Allow(walletID) {
		return &models.VerificationResult{
			Success:      false,
			Timestamp:    s.Clock.Now(),
			ErrorKind:    string(ledger.KindRateLimited),
			ErrorMessage: fmt.Sprintf("wallet %s exceeded the verification rate limit", walletID),
			UserMessage:  "Too many verification attempts, please wait a minute",
			Retryable:    true,
			RetryAfterMs: 60000,
		}
	}

	if entry, ok := s.Cache.Get(walletID); ok {
		cached := *entry.Payload
		cached.Cached = true
		return &cached
	}

	holdings, source, fetchErr := s.Gateway.FetchHoldings(ctx, walletID, secondaryAddress)
	if fetchErr != nil {
		result := &models.VerificationResult{
			Success:      false,
			Timestamp:    s.Clock.Now(),
			ErrorKind:    string(fetchErr.Kind),
			ErrorMessage: fetchErr.Message,
			UserMessage:  fetchErr.UserMessage,
			Retryable:    fetchErr.Retryable,
			RetryAfterMs: fetchErr.RetryAfter.Milliseconds(),
		}
		s.Cache.Put(walletID, result)
		return result
	}

	verdict := diff.Compare(claimed, holdings)
	result := &models.VerificationResult{
		Success:   true,
		Verdict:   &verdict,
		Source:    source,
		Timestamp: s.Clock.Now(),
	}

	s.Cache.Put(walletID, result)

	s.writeAudit(ctx, walletID, source, verdict)

	if verdict.Verified {
		if _, err := s.MarkVerified(ctx, walletID); err != nil {
			logrus.Errorf("status update failed for wallet %s: %v", walletID, err)
		}
		s.publishCompleted(ctx, walletID, source, traceID, verdict)
	}

	return result
}

// MarkVerified flips the canonical wallet record to verified and reports
// whether it already was, so callers can tell an idempotent no-op from a
// first-time verification. A missing record is a precondition failure, not a
// retryable condition.
func (s *VerificationService) MarkVerified(ctx context.Context, walletID string) (wasAlreadyVerified bool, err error) {
	record, err := s.WalletRepo.GetByWalletID(ctx, walletID)
	if err != nil {
		return false, fmt.Errorf("no canonical wallet record for %s: %w", walletID, err)
	}

	wasAlreadyVerified = record.IsVerified

	if err := s.WalletRepo.SetVerified(ctx, walletID, s.Clock.Now()); err != nil {
		return wasAlreadyVerified, fmt.Errorf("updating verification status for %s: %w", walletID, err)
	}

	return wasAlreadyVerified, nil
}

// GetVerificationStatus combines the short-TTL cache with the persisted flag
// for the admin read path.
func (s *VerificationService) GetVerificationStatus(ctx context.Context, walletID string) (*models.VerificationStatus, error) {
	status := &models.VerificationStatus{}

	cachedVerdict := false
	if entry, ok := s.Cache.Get(walletID); ok {
		status.HasRecent = true
		status.Cached = true
		status.Source = entry.Payload.Source
		if entry.Payload.Verdict != nil {
			status.Verified = entry.Payload.Verdict.Verified
			cachedVerdict = true
		}
	}

	record, err := s.WalletRepo.GetByWalletID(ctx, walletID)
	if err == nil {
		status.LastVerified = record.LastVerificationTime
		if !cachedVerdict {
			status.Verified = record.IsVerified
		}
	}

	return status, nil
}

// ClearVerificationCache drops every cached verdict. Administrative.
func (s *VerificationService) ClearVerificationCache() int {
	return s.Cache.Clear()
}

func (s *VerificationService) writeAudit(ctx context.Context, walletID, source string, verdict models.VerificationVerdict) {
	record := &models.AuditRecord{
		WalletID:      walletID,
		Verified:      verdict.Verified,
		Source:        source,
		ClaimedCount:  verdict.ClaimedCount,
		VerifiedCount: verdict.VerifiedCount,
		Timestamp:     s.Clock.Now(),
	}

	if err := s.AuditRepo.Create(ctx, record); err != nil {
		logrus.Errorf("audit write failed for wallet %s: %v", walletID, err)
	}
}

func (s *VerificationService) publishCompleted(ctx context.Context, walletID, source, traceID string, verdict models.VerificationVerdict) {
	event := models.VerificationCompletedEvent{
		WalletID:    walletID,
		Verified:    verdict.Verified,
		Confidence:  verdict.Confidence,
		Source:      source,
		TraceID:     traceID,
		CompletedAt: s.Clock.Now(),
	}

	if err := s.Publisher.Publish(ctx, models.VerificationCompletedTopic, event); err != nil {
		logrus.Errorf("failed to publish verification completed event for wallet %s: %v", walletID, err)
	}
}
