package pull_test

import (
	"context"

	"github.com/IntersectLabs/supra-oracle-pull/types"
)

// fakePuller implements the ProofPuller interface for testing purposes
type fakePuller struct {
	resp types.PullResponse
	err  error
}

// GetProof returns the values in the fakePuller.
func (f fakePuller) GetProof(context.Context, types.PullRequest) (types.PullResponse, error) {
	return f.resp, f.err
}
