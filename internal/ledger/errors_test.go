package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nftforge/mint-service/internal/ledger"
)

func TestMoreSpecific_Precedence(t *testing.T) {
	notFound := ledger.NewNotFoundError("primary", "W1")
	rateLimited := ledger.NewRateLimitedError("primary")
	timeout := ledger.NewTimeoutError("primary")
	apiErr := ledger.NewAPIError("primary", 500, "boom")
	netErr := ledger.NewNetworkError("primary", assert.AnError)

	assert.Equal(t, notFound, ledger.MoreSpecific(notFound, rateLimited))
	assert.Equal(t, notFound, ledger.MoreSpecific(rateLimited, notFound))
	assert.Equal(t, rateLimited, ledger.MoreSpecific(timeout, rateLimited))
	assert.Equal(t, timeout, ledger.MoreSpecific(apiErr, timeout))
	assert.Equal(t, apiErr, ledger.MoreSpecific(netErr, apiErr))
}

func TestMoreSpecific_NilArguments(t *testing.T) {
	timeout := ledger.NewTimeoutError("primary")

	assert.Equal(t, timeout, ledger.MoreSpecific(nil, timeout))
	assert.Equal(t, timeout, ledger.MoreSpecific(timeout, nil))
	assert.Nil(t, ledger.MoreSpecific(nil, nil))
}

func TestErrorTaxonomy_RetryableFlags(t *testing.T) {
	assert.False(t, ledger.NewInvalidAddressError("bad").Retryable)
	assert.False(t, ledger.NewNotFoundError("primary", "W1").Retryable)
	assert.True(t, ledger.NewRateLimitedError("primary").Retryable)
	assert.True(t, ledger.NewTimeoutError("primary").Retryable)
	assert.True(t, ledger.NewAPIError("primary", 503, "unavailable").Retryable)
	assert.True(t, ledger.NewNetworkError("primary", assert.AnError).Retryable)
}

func TestErrorTaxonomy_SuggestedBackoff(t *testing.T) {
	assert.Equal(t, int64(60000), ledger.NewRateLimitedError("primary").RetryAfter.Milliseconds())
	assert.Equal(t, int64(5000), ledger.NewTimeoutError("primary").RetryAfter.Milliseconds())
}

func TestErrorTaxonomy_UserMessages(t *testing.T) {
	kinds := []*ledger.FetchError{
		ledger.NewInvalidAddressError("bad"),
		ledger.NewRateLimitedError("primary"),
		ledger.NewTimeoutError("primary"),
		ledger.NewAPIError("primary", 500, "boom"),
		ledger.NewNetworkError("primary", assert.AnError),
		ledger.NewNotFoundError("primary", "W1"),
	}

	for _, err := range kinds {
		assert.NotEmpty(t, err.UserMessage)
		assert.NotEmpty(t, err.Message)
		assert.NotEmpty(t, err.Error())
	}
}
