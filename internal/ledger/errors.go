package ledger

import (
	"fmt"
	"time"
)

type ErrorKind string

const (
	KindInvalidAddress ErrorKind = "INVALID_ADDRESS"
	KindRateLimited    ErrorKind = "RATE_LIMITED"
	KindTimeout        ErrorKind = "TIMEOUT"
	KindAPIError       ErrorKind = "API_ERROR"
	KindNetworkError   ErrorKind = "NETWORK_ERROR"
	KindNotFound       ErrorKind = "NOT_FOUND"
)

// FetchError is the closed failure set of the ledger fetch path. Every
// instance carries a machine kind, a technical message, a user-facing
// message, a retryable flag and an optional suggested retry delay.
type FetchError struct {
	Kind        ErrorKind
	Message     string
	UserMessage string
	Retryable   bool
	RetryAfter  time.Duration
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// specificity ranks kinds for dual-provider failures: when both providers
// fail, the caller is told the most specific reason.
// NotFound > RateLimited > Timeout > ApiError > NetworkError.
var specificity = map[ErrorKind]int{
	KindInvalidAddress: 6,
	KindNotFound:       5,
	KindRateLimited:    4,
	KindTimeout:        3,
	KindAPIError:       2,
	KindNetworkError:   1,
}

// MoreSpecific returns whichever of the two errors ranks higher in the
// specificity order, preferring a over b on ties. Nil arguments lose.
func MoreSpecific(a, b *FetchError) *FetchError {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if specificity[b.Kind] > specificity[a.Kind] {
		return b
	}
	return a
}

func NewInvalidAddressError(message string) *FetchError {
	return &FetchError{
		Kind:        KindInvalidAddress,
		Message:     message,
		UserMessage: "The wallet address looks invalid, please check it and try again",
		Retryable:   false,
	}
}

func NewRateLimitedError(provider string) *FetchError {
	return &FetchError{
		Kind:        KindRateLimited,
		Message:     fmt.Sprintf("provider %s rate limited the request", provider),
		UserMessage: "The ledger service is busy, please wait a minute before retrying",
		Retryable:   true,
		RetryAfter:  60 * time.Second,
	}
}

func NewTimeoutError(provider string) *FetchError {
	return &FetchError{
		Kind:        KindTimeout,
		Message:     fmt.Sprintf("provider %s did not answer in time", provider),
		UserMessage: "The ledger service took too long to answer, please retry shortly",
		Retryable:   true,
		RetryAfter:  5 * time.Second,
	}
}

func NewAPIError(provider string, statusCode int, detail string) *FetchError {
	return &FetchError{
		Kind:        KindAPIError,
		Message:     fmt.Sprintf("provider %s returned status %d: %s", provider, statusCode, detail),
		UserMessage: "The ledger service returned an unexpected response, please retry",
		Retryable:   true,
	}
}

func NewNetworkError(provider string, cause error) *FetchError {
	return &FetchError{
		Kind:        KindNetworkError,
		Message:     fmt.Sprintf("provider %s unreachable: %v", provider, cause),
		UserMessage: "Could not reach the ledger service, please retry",
		Retryable:   true,
	}
}

func NewNotFoundError(provider, walletID string) *FetchError {
	return &FetchError{
		Kind:        KindNotFound,
		Message:     fmt.Sprintf("provider %s has no holdings for wallet %s", provider, walletID),
		UserMessage: "No on-chain holdings were found for this wallet",
		Retryable:   false,
	}
}
