package models

import "time"

// VerificationVerdict is the structured outcome of comparing claimed against
// on-chain holdings. Verified is true iff FalsePositives and Missing are both
// empty; Confidence is 100 iff Verified is true.
type VerificationVerdict struct {
	Verified           bool            `json:"verified"`
	ClaimedCount       int             `json:"claimed_count"`
	VerifiedCount      int             `json:"verified_count"`
	FalsePositives     []ClaimedAsset  `json:"false_positives"`
	Missing            []VerifiedAsset `json:"missing"`
	SourceOfTruth      []VerifiedAsset `json:"source_of_truth"`
	Confidence         int             `json:"confidence"`
	DiscrepancySummary string          `json:"discrepancy_summary,omitempty"`
}

// VerificationResult is what the orchestrator hands back to callers. It wraps
// a verdict with transport metadata on success, or the classified failure on
// error. Rate-limit denials and cached fetch failures come back through this
// type as ordinary results, never as Go errors.
type VerificationResult struct {
	Success      bool                 `json:"success"`
	Verdict      *VerificationVerdict `json:"verdict,omitempty"`
	Source       string               `json:"source,omitempty"`
	Timestamp    time.Time            `json:"timestamp"`
	Cached       bool                 `json:"cached"`
	ErrorKind    string               `json:"error_kind,omitempty"`
	ErrorMessage string               `json:"error_message,omitempty"`
	UserMessage  string               `json:"user_message,omitempty"`
	Retryable    bool                 `json:"retryable"`
	RetryAfterMs int64                `json:"retry_after_ms,omitempty"`
}

// VerificationStatus is the read-path summary for a wallet, combining the
// short-TTL cache with the persisted verification flag.
type VerificationStatus struct {
	HasRecent    bool      `json:"has_recent"`
	LastVerified time.Time `json:"last_verified,omitempty"`
	Verified     bool      `json:"verified"`
	Source       string    `json:"source,omitempty"`
	Cached       bool      `json:"cached"`
}
