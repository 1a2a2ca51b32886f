package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/goodnatureofminers/blockinsight7000-tokens/pkg/safe"
	"github.com/goodnatureofminers/blockinsight7000-tokens/pkg/workerpool"
	"go.uber.org/zap"
)

// errChainMoved reports a fetched block that does not extend the previous one.
var errChainMoved = errors.New("block does not extend the indexed chain")

type blockProcessor struct {
	source      BlockSource
	colorer     BlockColorer
	coin        model.Coin
	network     model.Network
	workerCount int
	metrics     Metrics
	logger      *zap.Logger
}

// Process colors the block at height. When prev is set the block must build on it.
func (p *blockProcessor) Process(ctx context.Context, height uint64, prev *chainhash.Hash) (_ *model.InsertTokenBlock, err error) {
	started := time.Now()
	defer func() {
		p.metrics.ObserveProcessHeight(err, height, started)
	}()

	block, err := p.source.FetchBlock(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("fetch block height %d: %w", height, err)
	}
	if prev != nil && block.PrevHash != *prev {
		return nil, fmt.Errorf("height %d builds on %s, indexed %s: %w", height, block.PrevHash, prev, errChainMoved)
	}

	colored, err := p.colorBlock(ctx, block)
	if err != nil {
		return nil, fmt.Errorf("color block height %d: %w", height, err)
	}
	return p.rows(block, colored)
}

// colorBlock colors the block level by level, so in-block parents are cached before
// their children resolve.
func (p *blockProcessor) colorBlock(ctx context.Context, block *bitcoin.Block) ([]*model.ColoredTx, error) {
	colored := make([]*model.ColoredTx, len(block.Txs))
	for _, level := range dependencyLevels(block.Txs) {
		results, err := workerpool.Map(ctx, p.workerCount, level, func(ctx context.Context, idx int) (*model.ColoredTx, error) {
			return p.colorer.ColorForIndex(ctx, block.Txs[idx].MsgTx(), block.Hash)
		})
		if err != nil {
			return nil, err
		}
		for i, idx := range level {
			colored[idx] = results[i]
		}
	}
	return colored, nil
}

func (p *blockProcessor) rows(block *bitcoin.Block, colored []*model.ColoredTx) (*model.InsertTokenBlock, error) {
	txCount, err := safe.Uint32(len(block.Txs))
	if err != nil {
		return nil, fmt.Errorf("tx count of block %s: %w", block.Hash, err)
	}
	insert := &model.InsertTokenBlock{
		Block: model.TokenBlock{
			Coin:      p.coin,
			Network:   p.network,
			Height:    block.Height,
			Hash:      block.Hash.String(),
			PrevHash:  block.PrevHash.String(),
			Timestamp: block.Timestamp,
			TxCount:   txCount,
		},
	}
	for _, tx := range colored {
		if tx == nil || !tx.IsColored() {
			continue
		}
		insert.Block.TokenTxs++
		if tx.HasInvalidEntries() {
			insert.Block.InvalidTxs++
			p.logger.Info("indexed tx with invalid token burns",
				zap.Uint64("height", block.Height), zap.Stringer("txid", tx.TxID))
		}
		insert.Entries = append(insert.Entries, model.EntryRows(p.coin, p.network, block.Height, tx)...)
		insert.Outputs = append(insert.Outputs, model.OutputRows(p.coin, p.network, block.Height, tx)...)
	}
	return insert, nil
}
