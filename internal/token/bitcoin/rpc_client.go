// Package bitcoin adapts the node RPC to the block, transaction and output lookups of the token indexer.
package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// ObservedClient wraps the node RPC with metrics instrumentation.
type ObservedClient struct {
	client     RPCClient
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented RPC client.
func NewObservedClient(client RPCClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetBlockCount() (int64, error) {
	return observe(r.rpcMetrics, "get_block_count", r.client.GetBlockCount)
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (*chainhash.Hash, error) {
	return observe(r.rpcMetrics, "get_block_hash", func() (*chainhash.Hash, error) {
		return r.client.GetBlockHash(blockHeight)
	})
}

func (r *ObservedClient) GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error) {
	return observe(r.rpcMetrics, "get_block", func() (*wire.MsgBlock, error) {
		return r.client.GetBlock(blockHash)
	})
}

// GetRawTransactionVerbose is the only lookup that reaches unconfirmed txs.
func (r *ObservedClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error) {
	return observe(r.rpcMetrics, "get_raw_transaction_verbose", func() (*btcjson.TxRawResult, error) {
		return r.client.GetRawTransactionVerbose(txHash)
	})
}

func observe[T any](m RPCMetrics, operation string, call func() (T, error)) (T, error) {
	started := time.Now()
	v, err := call()
	m.Observe(operation, err, started)
	return v, err
}
