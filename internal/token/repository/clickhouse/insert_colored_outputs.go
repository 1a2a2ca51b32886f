package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// InsertColoredOutputs stores colored outputs.
func (r *Repository) InsertColoredOutputs(ctx context.Context, outputs []model.ColoredOutputRow) (err error) {
	start := time.Now()
	defer func() {
		coin, network := scope(outputs, func(o model.ColoredOutputRow) (model.Coin, model.Network) { return o.Coin, o.Network })
		r.metrics.Observe("insert_colored_outputs", coin, network, err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO token_colored_outputs (
	coin,
	network,
	block_height,
	txid,
	output_index,
	token_id,
	protocol,
	token_type,
	amount,
	is_mint_baton,
	entry_idx
) VALUES`

	return sendBatch(ctx, r.conn, query, "colored outputs", outputs, func(o model.ColoredOutputRow) []any {
		return []any{
			string(o.Coin),
			string(o.Network),
			o.BlockHeight,
			o.TxID,
			o.Index,
			o.TokenID,
			o.Protocol,
			o.TokenType,
			o.Amount,
			o.IsMintBaton,
			o.EntryIdx,
		}
	})
}
