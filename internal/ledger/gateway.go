package ledger

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nftforge/mint-service/internal/models"
)

// Gateway fetches ground-truth holdings from a prioritized list of indexer
// providers. Each attempt runs under a bounded timeout; when every provider
// fails, the most specific error wins.
type Gateway struct {
	providers []Provider
	timeout   time.Duration
}

func NewGateway(timeout time.Duration, providers ...Provider) *Gateway {
	return &Gateway{
		providers: providers,
		timeout:   timeout,
	}
}

// FetchHoldings returns the on-chain holdings for a wallet together with the
// name of the provider that answered. The timeout is generous (large
// collections paginate slowly on public indexers) but hard.
func (g *Gateway) FetchHoldings(ctx context.Context, walletID, secondaryAddress string) ([]models.VerifiedAsset, string, *FetchError) {
	if walletID == "" {
		return nil, "", NewInvalidAddressError("wallet id is required")
	}

	var lastErr *FetchError
	for _, provider := range g.providers {
		attemptCtx, cancel := context.WithTimeout(ctx, g.timeout)
		holdings, fetchErr := provider.FetchHoldings(attemptCtx, walletID, secondaryAddress)
		cancel()

		if fetchErr == nil {
			return holdings, provider.Name(), nil
		}

		logrus.Warnf("ledger provider %s failed for wallet %s: %s", provider.Name(), walletID, fetchErr.Error())
		lastErr = MoreSpecific(lastErr, fetchErr)
	}

	return nil, "", lastErr
}
