package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// MaxTokenBlockHeight returns the highest colored block. The flag is false when nothing is stored.
func (r *Repository) MaxTokenBlockHeight(ctx context.Context, coin model.Coin, network model.Network) (_ uint64, _ bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_token_block_height", coin, network, err, start)
	}()

	const query = `
SELECT coalesce(max(height), toUInt64(0)) AS max_height, count() AS blocks
FROM token_blocks
WHERE coin = ? AND network = ?`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query max token block height: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		return 0, false, fmt.Errorf("max token block height not found")
	}
	var (
		height uint64
		blocks uint64
	)
	if err = rows.Scan(&height, &blocks); err != nil {
		return 0, false, fmt.Errorf("scan max token block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max token block height: %w", err)
	}
	return height, blocks > 0, nil
}
