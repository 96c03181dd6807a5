package dto

import (
	"strings"

	"github.com/nftforge/mint-service/internal/models"
)

type VerifyOwnershipRequest struct {
	WalletID         string         `json:"wallet_id" binding:"required"`
	SecondaryAddress string         `json:"secondary_address"`
	TraceID          string         `json:"trace_id"`
	ClaimedAssets    []ClaimedAsset `json:"claimed_assets"`
}

type ClaimedAsset struct {
	AssetID        string `json:"asset_id"`
	AssetName      string `json:"asset_name"`
	SequenceNumber int    `json:"sequence_number"`
	Quantity       int    `json:"quantity"`
}

func (r *VerifyOwnershipRequest) Sanitize() {
	r.WalletID = strings.TrimSpace(r.WalletID)
	r.SecondaryAddress = strings.TrimSpace(r.SecondaryAddress)
	r.TraceID = strings.TrimSpace(r.TraceID)
	for i := range r.ClaimedAssets {
		r.ClaimedAssets[i].AssetID = strings.TrimSpace(r.ClaimedAssets[i].AssetID)
	}
}

func (r *VerifyOwnershipRequest) ToClaimed() []models.ClaimedAsset {
	claimed := make([]models.ClaimedAsset, 0, len(r.ClaimedAssets))
	for _, a := range r.ClaimedAssets {
		claimed = append(claimed, models.ClaimedAsset{
			AssetID:        a.AssetID,
			AssetName:      a.AssetName,
			SequenceNumber: a.SequenceNumber,
			Quantity:       a.Quantity,
		})
	}
	return claimed
}
