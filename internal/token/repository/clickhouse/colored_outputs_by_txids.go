package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// ColoredOutputsByTxIDs returns the colored outputs of every persisted token tx among txids.
// A token tx without colored outputs maps to an empty slice; unknown txids are absent.
func (r *Repository) ColoredOutputsByTxIDs(ctx context.Context, coin model.Coin, network model.Network, txids []string) (_ map[string][]model.ColoredOutputRow, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("colored_outputs_by_txids", coin, network, err, start)
	}()

	result := make(map[string][]model.ColoredOutputRow, len(txids))
	if len(txids) == 0 {
		return result, nil
	}

	if err = r.knownTokenTxs(ctx, coin, network, txids, result); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return result, nil
	}

	const query = `
SELECT
	block_height,
	txid,
	output_index,
	token_id,
	protocol,
	token_type,
	amount,
	is_mint_baton,
	entry_idx
FROM token_colored_outputs FINAL
WHERE coin = ? AND network = ? AND txid IN ?
ORDER BY txid, output_index`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), txids)
	if err != nil {
		return nil, fmt.Errorf("query colored outputs by txids: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		output := model.ColoredOutputRow{Coin: coin, Network: network}
		if err = rows.Scan(
			&output.BlockHeight,
			&output.TxID,
			&output.Index,
			&output.TokenID,
			&output.Protocol,
			&output.TokenType,
			&output.Amount,
			&output.IsMintBaton,
			&output.EntryIdx,
		); err != nil {
			return nil, fmt.Errorf("scan colored output: %w", err)
		}
		result[output.TxID] = append(result[output.TxID], output)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate colored outputs: %w", err)
	}
	return result, nil
}

func (r *Repository) knownTokenTxs(ctx context.Context, coin model.Coin, network model.Network, txids []string, result map[string][]model.ColoredOutputRow) (err error) {
	const query = `
SELECT DISTINCT txid
FROM token_entries FINAL
WHERE coin = ? AND network = ? AND txid IN ?`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), txids)
	if err != nil {
		return fmt.Errorf("query token txs: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var txid string
		if err = rows.Scan(&txid); err != nil {
			return fmt.Errorf("scan token tx: %w", err)
		}
		result[txid] = []model.ColoredOutputRow{}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("iterate token txs: %w", err)
	}
	return nil
}
