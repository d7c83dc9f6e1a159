package radix

import "context"

// NotarizeRequest is an unsigned transaction: the manifest plus its intent header.
type NotarizeRequest struct {
	Network    string
	Manifest   string
	StartEpoch uint64
	EndEpoch   uint64
	Nonce      uint32
}

// NotarizedTransaction is a compiled, signed and notarized transaction ready to submit.
type NotarizedTransaction struct {
	IntentHash   string
	NotarizedHex string
}

// Notarizer compiles manifests and signs transactions with the account key. It is usually
// backed by the Radix Engine Toolkit.
type Notarizer interface {
	// AccountAddress returns the address of the account controlled by key, which pays
	// the fee of every transaction.
	AccountAddress(network string, key []byte) (string, error)
	// Notarize compiles req and signs it with key as both signer and notary.
	Notarize(ctx context.Context, req NotarizeRequest, key []byte) (NotarizedTransaction, error)
}
