package pull

import (
	"context"
	"errors"

	"github.com/IntersectLabs/supra-oracle-pull/sdk"
	sdkerrors "github.com/IntersectLabs/supra-oracle-pull/sdk/errors"
	"github.com/IntersectLabs/supra-oracle-pull/types"
)

var errNoConnector = errors.New("relay needs a connector")

// ProofPuller fetches one proof per call. *Client implements it.
type ProofPuller interface {
	GetProof(ctx context.Context, req types.PullRequest) (types.PullResponse, error)
}

var _ ProofPuller = (*Client)(nil)

// RelayResult is the outcome of a successful pull and submission.
type RelayResult struct {
	Proof       types.PullResponse
	Transaction types.TransactionResult
}

// Relay pulls a proof for req and forwards it to connector. The steps run sequentially: if
// the pull fails nothing is submitted and the pull error is returned unchanged. Neither
// step is retried.
func Relay(
	ctx context.Context,
	puller ProofPuller,
	connector sdk.Connector,
	req types.PullRequest,
) (RelayResult, error) {
	if connector == nil {
		return RelayResult{}, errNoConnector
	}
	if connector.ChainType() != req.ChainType {
		return RelayResult{}, sdkerrors.NewChainMismatchError(connector.ChainType(), req.ChainType)
	}

	lggr := sdk.LoggerFrom(ctx)

	proof, err := puller.GetProof(ctx, req)
	if err != nil {
		lggr.Errorw("Proof pull failed, not submitting", "chainType", req.ChainType, "err", err)
		return RelayResult{}, err
	}

	tx, err := connector.Invoke(ctx, proof)
	if err != nil {
		lggr.Errorw("Proof submission failed", "chainType", req.ChainType, "err", err)
		return RelayResult{Proof: proof}, err
	}

	lggr.Infow("Proof relayed", "chainType", req.ChainType, "pairIndexes", proof.PairIndexes(), "tx", tx.Hash)

	return RelayResult{Proof: proof, Transaction: tx}, nil
}

// RelayPairs is a shorthand for Relay that builds the request for the connector's chain type.
func RelayPairs(
	ctx context.Context,
	puller ProofPuller,
	connector sdk.Connector,
	pairIndexes ...uint32,
) (RelayResult, error) {
	if connector == nil {
		return RelayResult{}, errNoConnector
	}

	return Relay(ctx, puller, connector, types.NewPullRequest(connector.ChainType(), pairIndexes...))
}
