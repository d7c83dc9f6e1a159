package aptos

import (
	"github.com/aptos-labs/aptos-go-sdk"
)

// TransactionStatus is the committed state of a submitted transaction.
type TransactionStatus struct {
	Hash     string
	Success  bool
	VmStatus string
}

// Client is the part of the Aptos node API the connector uses.
type Client interface {
	// BuildSignAndSubmit builds the transaction for payload, signs it with sender and returns
	// the hash of the pending transaction.
	BuildSignAndSubmit(sender aptos.TransactionSigner, payload aptos.TransactionPayload, options ...any) (string, error)
	// WaitForTransaction blocks until hash is committed.
	WaitForTransaction(hash string) (TransactionStatus, error)
}

// NodeClient adapts an aptos-go-sdk RPC client to Client.
type NodeClient struct {
	client aptos.AptosRpcClient
}

var _ Client = NodeClient{}

// NewNodeClient wraps an aptos-go-sdk RPC client.
func NewNodeClient(client aptos.AptosRpcClient) NodeClient {
	return NodeClient{client: client}
}

// DialNodeClient creates an aptos-go-sdk client for rpcURL. The chain ID is fetched lazily
// when the first transaction is built.
func DialNodeClient(rpcURL string) (NodeClient, error) {
	client, err := aptos.NewClient(aptos.NetworkConfig{NodeUrl: rpcURL})
	if err != nil {
		return NodeClient{}, err
	}

	return NewNodeClient(client), nil
}

func (n NodeClient) BuildSignAndSubmit(sender aptos.TransactionSigner, payload aptos.TransactionPayload, options ...any) (string, error) {
	resp, err := n.client.BuildSignAndSubmitTransaction(sender, payload, options...)
	if err != nil {
		return "", err
	}

	return resp.Hash, nil
}

func (n NodeClient) WaitForTransaction(hash string) (TransactionStatus, error) {
	data, err := n.client.WaitForTransaction(hash)
	if err != nil {
		return TransactionStatus{}, err
	}

	return TransactionStatus{
		Hash:     data.Hash,
		Success:  data.Success,
		VmStatus: data.VmStatus,
	}, nil
}
