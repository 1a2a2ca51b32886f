package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// InsertTokenEntries stores per-token entries, invalid ones included.
func (r *Repository) InsertTokenEntries(ctx context.Context, entries []model.TokenEntryRow) (err error) {
	start := time.Now()
	defer func() {
		coin, network := scope(entries, func(e model.TokenEntryRow) (model.Coin, model.Network) { return e.Coin, e.Network })
		r.metrics.Observe("insert_token_entries", coin, network, err, start)
	}()

	if len(entries) == 0 {
		return nil
	}

	const query = `
INSERT INTO token_entries (
	coin,
	network,
	block_height,
	txid,
	entry_idx,
	token_id,
	protocol,
	token_type,
	tx_kind,
	group_token_id,
	intentional_burn,
	actual_burn,
	burns_mint_batons,
	is_invalid,
	burn_summary,
	failed_colorings,
	vault_scripthash
) VALUES`

	return sendBatch(ctx, r.conn, query, "token entries", entries, func(e model.TokenEntryRow) []any {
		failed := e.FailedColorings
		if failed == nil {
			failed = []string{}
		}
		return []any{
			string(e.Coin),
			string(e.Network),
			e.BlockHeight,
			e.TxID,
			e.EntryIdx,
			e.TokenID,
			e.Protocol,
			e.TokenType,
			e.TxKind,
			e.GroupTokenID,
			e.IntentionalBurn,
			e.ActualBurn,
			e.BurnsMintBatons,
			e.IsInvalid,
			e.BurnSummary,
			failed,
			e.VaultScripthash,
		}
	})
}
