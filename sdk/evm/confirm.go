package evm

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/IntersectLabs/supra-oracle-pull/sdk"
)

// DefaultPollInterval is how often the connector asks for the receipt of a sent transaction.
const DefaultPollInterval = time.Second

// waitMined polls for the receipt of txHash until it is mined or ctx is done.
func waitMined(ctx context.Context, b bind.DeployBackend, txHash common.Hash, interval time.Duration) (*gethtypes.Receipt, error) {
	queryTicker := time.NewTicker(interval)
	defer queryTicker.Stop()

	lggr := sdk.LoggerFrom(ctx)
	for {
		receipt, err := b.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}

		if errors.Is(err, ethereum.NotFound) {
			lggr.Debugw("Transaction not yet mined", "hash", txHash.Hex())
		} else {
			lggr.Debugw("Receipt retrieval failed", "hash", txHash.Hex(), "err", err)
		}

		// Wait for the next round.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-queryTicker.C:
		}
	}
}
