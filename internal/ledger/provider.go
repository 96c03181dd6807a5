package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/nftforge/mint-service/internal/models"
)

// Provider is one ledger indexer endpoint. The gateway walks a prioritized
// list of these, so adding a third provider is a configuration change.
type Provider interface {
	Name() string
	FetchHoldings(ctx context.Context, walletID, secondaryAddress string) ([]models.VerifiedAsset, *FetchError)
}

// IndexerClient talks to one HTTP indexer. It is stateless and safe for
// concurrent use; every transport or protocol failure is normalized into the
// FetchError taxonomy.
type IndexerClient struct {
	client  *http.Client
	name    string
	baseURL string
}

func NewIndexerClient(name, baseURL string, timeout time.Duration) *IndexerClient {
	return &IndexerClient{
		client: &http.Client{
			Timeout: timeout,
		},
		name:    name,
		baseURL: baseURL,
	}
}

func (c *IndexerClient) Name() string {
	return c.name
}

type holdingsResponse struct {
	Holdings []models.VerifiedAsset `json:"holdings"`
}

func (c *IndexerClient) FetchHoldings(ctx context.Context, walletID, secondaryAddress string) ([]models.VerifiedAsset, *FetchError) {
	endpoint := fmt.Sprintf("%s/v1/wallets/%s/holdings", c.baseURL, url.PathEscape(walletID))
	if secondaryAddress != "" {
		endpoint = fmt.Sprintf("%s?secondary_address=%s", endpoint, url.QueryEscape(secondaryAddress))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, NewInvalidAddressError(fmt.Sprintf("cannot build request for wallet %s: %v", walletID, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewNotFoundError(c.name, walletID)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, NewRateLimitedError(c.name)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, NewAPIError(c.name, resp.StatusCode, string(body))
	}

	var parsed holdingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, NewAPIError(c.name, resp.StatusCode, fmt.Sprintf("malformed holdings payload: %v", err))
	}

	if parsed.Holdings == nil {
		return []models.VerifiedAsset{}, nil
	}
	return parsed.Holdings, nil
}

func (c *IndexerClient) classifyTransportError(err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(c.name)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(c.name)
	}
	return NewNetworkError(c.name, err)
}
