// Package diff compares client-claimed NFT holdings against the on-chain
// holdings returned by a ledger indexer. Compare is a pure function so the
// scoring rules can be tested exhaustively without any I/O.
package diff

import (
	"fmt"
	"math"

	"github.com/nftforge/mint-service/internal/models"
)

// Compare diffs the two sets on asset id and scores the discrepancy.
//
// FalsePositives are claimed assets absent on-chain; Missing are on-chain
// assets the client failed to claim. Verified is true only when both lists
// are empty, with one deliberate exception: two empty inputs score 0 and stay
// unverified, because absence of data is not proof of ownership.
func Compare(claimed []models.ClaimedAsset, verified []models.VerifiedAsset) models.VerificationVerdict {
	verdict := models.VerificationVerdict{
		ClaimedCount:   len(claimed),
		VerifiedCount:  len(verified),
		FalsePositives: []models.ClaimedAsset{},
		Missing:        []models.VerifiedAsset{},
		SourceOfTruth:  verified,
	}

	if len(claimed) == 0 && len(verified) == 0 {
		verdict.Confidence = 0
		verdict.DiscrepancySummary = "no assets to verify"
		return verdict
	}

	verifiedIDs := make(map[string]struct{}, len(verified))
	for _, asset := range verified {
		verifiedIDs[asset.AssetID] = struct{}{}
	}
	claimedIDs := make(map[string]struct{}, len(claimed))
	for _, asset := range claimed {
		claimedIDs[asset.AssetID] = struct{}{}
	}

	for _, asset := range claimed {
		if _, ok := verifiedIDs[asset.AssetID]; !ok {
			verdict.FalsePositives = append(verdict.FalsePositives, asset)
		}
	}
	for _, asset := range verified {
		if _, ok := claimedIDs[asset.AssetID]; !ok {
			verdict.Missing = append(verdict.Missing, asset)
		}
	}

	verdict.Verified = len(verdict.FalsePositives) == 0 && len(verdict.Missing) == 0
	verdict.Confidence = confidence(verdict)

	if !verdict.Verified {
		verdict.DiscrepancySummary = fmt.Sprintf(
			"%d claimed asset(s) not found on chain, %d on-chain asset(s) not claimed",
			len(verdict.FalsePositives), len(verdict.Missing),
		)
	}

	return verdict
}

func confidence(v models.VerificationVerdict) int {
	if v.Verified {
		return 100
	}

	base := v.ClaimedCount
	if v.VerifiedCount > base {
		base = v.VerifiedCount
	}

	discrepancies := len(v.FalsePositives) + len(v.Missing)
	score := int(math.Round(100 * float64(base-discrepancies) / float64(base)))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
