package indexer

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/goodnatureofminers/blockinsight7000-tokens/pkg/batcher"
	"go.uber.org/zap"
)

// blockWriter persists colored blocks in height order. Rows go out before their block,
// so a stored block height implies its entries and outputs are stored too.
type blockWriter struct {
	repo         Repository
	logger       *zap.Logger
	blockBatcher *batcher.Batcher[model.InsertTokenBlock]
}

func newBlockWriter(repo Repository, logger *zap.Logger) *blockWriter {
	w := &blockWriter{
		repo:   repo,
		logger: logger,
	}

	w.blockBatcher = batcher.New[model.InsertTokenBlock](
		logger.Named("blockBatcher"),
		w.flush,
		blockBatcherCapacity,
		blockBatcherFlushInterval,
		blockBatcherRPS,
	)
	return w
}

func (w *blockWriter) Start(ctx context.Context) {
	w.blockBatcher.Start(ctx)
}

func (w *blockWriter) Stop() error {
	return w.blockBatcher.Stop()
}

func (w *blockWriter) WriteBlock(ctx context.Context, b model.InsertTokenBlock) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.blockBatcher.Add(ctx, b)
}

func (w *blockWriter) flush(ctx context.Context, insertBlocks []model.InsertTokenBlock) error {
	blocks := make([]model.TokenBlock, 0, len(insertBlocks))
	var entries []model.TokenEntryRow
	var outputs []model.ColoredOutputRow

	for _, block := range insertBlocks {
		blocks = append(blocks, block.Block)
		entries = append(entries, block.Entries...)
		outputs = append(outputs, block.Outputs...)
		if len(outputs) >= rowFlushThreshold {
			if err := w.repo.InsertColoredOutputs(ctx, outputs); err != nil {
				return err
			}
			w.logger.Debug("InsertColoredOutputs", zap.Int("count", len(outputs)))
			outputs = outputs[:0]
		}
	}

	if len(outputs) > 0 {
		if err := w.repo.InsertColoredOutputs(ctx, outputs); err != nil {
			return err
		}
	}
	if len(entries) > 0 {
		if err := w.repo.InsertTokenEntries(ctx, entries); err != nil {
			return err
		}
	}
	return w.repo.InsertTokenBlocks(ctx, blocks)
}
