package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// InsertTokenBlocks stores colored block rows.
func (r *Repository) InsertTokenBlocks(ctx context.Context, blocks []model.TokenBlock) (err error) {
	start := time.Now()
	defer func() {
		coin, network := scope(blocks, func(b model.TokenBlock) (model.Coin, model.Network) { return b.Coin, b.Network })
		r.metrics.Observe("insert_token_blocks", coin, network, err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO token_blocks (
	coin,
	network,
	height,
	hash,
	prev_hash,
	timestamp,
	tx_count,
	token_tx_count,
	invalid_tx_count
) VALUES`

	return sendBatch(ctx, r.conn, query, "token blocks", blocks, func(b model.TokenBlock) []any {
		return []any{
			string(b.Coin),
			string(b.Network),
			b.Height,
			b.Hash,
			b.PrevHash,
			b.Timestamp,
			b.TxCount,
			b.TokenTxs,
			b.InvalidTxs,
		}
	})
}

func scope[T any](items []T, get func(T) (model.Coin, model.Network)) (model.Coin, model.Network) {
	if len(items) == 0 {
		return "", ""
	}
	return get(items[0])
}
