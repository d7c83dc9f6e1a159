package types

// TransactionResult is returned by a connector once a proof transaction has been accepted
// on chain. Users of this struct should cast RawData to the chain specific type.
type TransactionResult struct {
	Hash        string `json:"hash"`
	ChainFamily string `json:"chainFamily"`
	RawData     any    `json:"rawData"`
}

// NewTransactionResult creates a TransactionResult.
func NewTransactionResult(hash string, chainType ChainType, rawData any) TransactionResult {
	return TransactionResult{
		Hash:        hash,
		ChainFamily: chainType.String(),
		RawData:     rawData,
	}
}
