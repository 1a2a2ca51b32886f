package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// TokenBlockHash returns the hash stored for height. The flag is false when no block is stored.
func (r *Repository) TokenBlockHash(ctx context.Context, coin model.Coin, network model.Network, height uint64) (_ string, _ bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("token_block_hash", coin, network, err, start)
	}()

	const query = `
SELECT hash
FROM token_blocks FINAL
WHERE coin = ? AND network = ? AND height = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), height)
	if err != nil {
		return "", false, fmt.Errorf("query token block hash: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return "", false, fmt.Errorf("iterate token block hash: %w", err)
		}
		return "", false, nil
	}
	var hash string
	if err = rows.Scan(&hash); err != nil {
		return "", false, fmt.Errorf("scan token block hash: %w", err)
	}
	return hash, true, nil
}
