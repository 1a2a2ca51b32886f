package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// DeleteFromHeight removes every row at or above height. Blocks go last so an interrupted
// rewind is retried from the same height.
func (r *Repository) DeleteFromHeight(ctx context.Context, coin model.Coin, network model.Network, height uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("delete_from_height", coin, network, err, start)
	}()

	queries := []struct {
		table  string
		column string
	}{
		{table: "token_colored_outputs", column: "block_height"},
		{table: "token_entries", column: "block_height"},
		{table: "token_blocks", column: "height"},
	}
	for _, q := range queries {
		query := fmt.Sprintf("DELETE FROM %s WHERE coin = ? AND network = ? AND %s >= ?", q.table, q.column)
		if err = r.conn.Exec(ctx, query, string(coin), string(network), height); err != nil {
			return fmt.Errorf("delete %s from height %d: %w", q.table, height, err)
		}
	}
	return nil
}
