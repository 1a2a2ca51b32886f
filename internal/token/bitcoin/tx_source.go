package bitcoin

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// TxSource fetches transactions from the node. Confirmed transactions are kept serialized
// in a byte cache keyed by txid, prefixed with their block hash.
type TxSource struct {
	rpc     RPCClient
	cache   *fastcache.Cache
	metrics TxCacheMetrics
}

// NewTxSource creates a TxSource whose cache holds up to maxBytes.
func NewTxSource(rpc RPCClient, maxBytes int, metrics TxCacheMetrics) *TxSource {
	return &TxSource{
		rpc:     rpc,
		cache:   fastcache.New(maxBytes),
		metrics: metrics,
	}
}

// FetchTx returns a transaction and the hash of its block, empty when unconfirmed.
func (s *TxSource) FetchTx(ctx context.Context, txid chainhash.Hash) (*wire.MsgTx, string, error) {
	if tx, block, ok := s.cached(txid); ok {
		s.metrics.ObserveTxCache(true)
		return tx, block, nil
	}
	s.metrics.ObserveTxCache(false)

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	res, err := s.rpc.GetRawTransactionVerbose(&txid)
	if err != nil {
		return nil, "", fmt.Errorf("get raw transaction %s: %w", txid, err)
	}
	raw, err := hex.DecodeString(res.Hex)
	if err != nil {
		return nil, "", fmt.Errorf("decode tx %s hex: %w", txid, err)
	}
	tx := new(wire.MsgTx)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, "", fmt.Errorf("deserialize tx %s: %w", txid, err)
	}
	if got := tx.TxHash(); got != txid {
		return nil, "", fmt.Errorf("tx %s hashes to %s", txid, got)
	}

	if res.BlockHash != "" && res.Confirmations > 0 {
		block, err := chainhash.NewHashFromStr(res.BlockHash)
		if err != nil {
			return nil, "", fmt.Errorf("parse block hash of tx %s: %w", txid, err)
		}
		s.cache.SetBig(txid[:], append(block[:], raw...))
		return tx, res.BlockHash, nil
	}
	return tx, "", nil
}

// Reset drops every cached transaction. It is called after a reorg, when cached block
// hashes may point at orphaned blocks.
func (s *TxSource) Reset() {
	s.cache.Reset()
}

func (s *TxSource) cached(txid chainhash.Hash) (*wire.MsgTx, string, bool) {
	value := s.cache.GetBig(nil, txid[:])
	if len(value) <= chainhash.HashSize {
		return nil, "", false
	}
	block, err := chainhash.NewHash(value[:chainhash.HashSize])
	if err != nil {
		return nil, "", false
	}
	tx := new(wire.MsgTx)
	if err := tx.Deserialize(bytes.NewReader(value[chainhash.HashSize:])); err != nil {
		return nil, "", false
	}
	return tx, block.String(), true
}
