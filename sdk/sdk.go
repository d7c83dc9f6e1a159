package sdk

import (
	"context"

	"github.com/IntersectLabs/supra-oracle-pull/types"
)

// Connector submits a pulled proof to the destination contract of one chain family.
//
// This must be implemented by any chain.
type Connector interface {
	// ChainType returns the chain family whose proofs this connector accepts.
	ChainType() types.ChainType

	// Invoke sends exactly one transaction carrying the proof and returns it once the chain
	// has accepted it. Failed submissions are reported, never retried.
	Invoke(ctx context.Context, resp types.PullResponse) (types.TransactionResult, error)

	// Close releases the connector's client handle and zeroes its key material.
	Close() error
}
