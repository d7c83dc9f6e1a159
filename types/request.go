package types

import (
	"encoding/json"
)

// PullRequest is the body of a `/get_proof` call.
type PullRequest struct {
	// PairIndexes identifies the data feeds to fetch proofs for. An empty list is legal and
	// yields an empty proof set.
	PairIndexes []uint32 `json:"pair_indexes"`
	// ChainType selects the proof encoding the oracle responds with.
	ChainType ChainType `json:"chain_type"`
}

// NewPullRequest creates a PullRequest for the given chain type and pair indexes.
func NewPullRequest(chainType ChainType, pairIndexes ...uint32) PullRequest {
	return PullRequest{
		PairIndexes: pairIndexes,
		ChainType:   chainType,
	}
}

// Validate checks the request before it is sent.
func (r PullRequest) Validate() error {
	return r.ChainType.Validate()
}

// MarshalJSON encodes a nil pair index list as an empty array instead of null.
func (r PullRequest) MarshalJSON() ([]byte, error) {
	type alias PullRequest

	a := alias(r)
	if a.PairIndexes == nil {
		a.PairIndexes = []uint32{}
	}

	return json.Marshal(a)
}
