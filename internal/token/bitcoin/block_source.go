package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-tokens/pkg/safe"
)

// Block is a block fetched for coloring, with its transactions in canonical order.
type Block struct {
	Height    uint64
	Hash      chainhash.Hash
	PrevHash  chainhash.Hash
	Timestamp time.Time
	Txs       []*btcutil.Tx
}

// BlockSource reads blocks from the node.
type BlockSource struct {
	rpc RPCClient
}

func NewBlockSource(rpc RPCClient) *BlockSource {
	return &BlockSource{rpc: rpc}
}

// LatestHeight returns the latest block height from the node.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// BlockHash returns the hash of the active chain block at height.
func (s *BlockSource) BlockHash(ctx context.Context, height uint64) (chainhash.Hash, error) {
	rpcHeight, err := safe.Int64(height)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("block height: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return chainhash.Hash{}, err
	}
	hash, err := s.rpc.GetBlockHash(rpcHeight)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return *hash, nil
}

// FetchBlock retrieves the block at the given height.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*Block, error) {
	hash, err := s.BlockHash(ctx, height)
	if err != nil {
		return nil, err
	}
	msg, err := s.rpc.GetBlock(&hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	if got := msg.BlockHash(); got != hash {
		return nil, fmt.Errorf("block at height %d hashes to %s, expected %s", height, got, hash)
	}
	return &Block{
		Height:    height,
		Hash:      hash,
		PrevHash:  msg.Header.PrevBlock,
		Timestamp: msg.Header.Timestamp.UTC(),
		Txs:       btcutil.NewBlock(msg).Transactions(),
	}, nil
}
