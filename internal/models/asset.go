package models

// ClaimedAsset is an NFT the client asserts ownership of. It arrives from
// the purchase flow and is untrusted until checked against the ledger.
type ClaimedAsset struct {
	AssetID        string `json:"asset_id"`
	AssetName      string `json:"asset_name"`
	SequenceNumber int    `json:"sequence_number"`
	Quantity       int    `json:"quantity,omitempty"`
}

// VerifiedAsset is an NFT confirmed present on-chain by a ledger indexer.
// AssetID is the natural key shared with ClaimedAsset.
type VerifiedAsset struct {
	AssetID        string `json:"asset_id"`
	AssetName      string `json:"asset_name"`
	SequenceNumber int    `json:"sequence_number"`
	Quantity       int    `json:"quantity,omitempty"`
}
