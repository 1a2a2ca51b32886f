package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

// VaultScripthashes returns the hex vault scripthash recorded at genesis for each MintVault token.
func (r *Repository) VaultScripthashes(ctx context.Context, coin model.Coin, network model.Network, tokenIDs []string) (_ map[string]string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("vault_scripthashes", coin, network, err, start)
	}()

	result := make(map[string]string, len(tokenIDs))
	if len(tokenIDs) == 0 {
		return result, nil
	}

	const query = `
SELECT token_id, any(vault_scripthash)
FROM token_entries
WHERE coin = ? AND network = ? AND token_id IN ? AND tx_kind = 'GENESIS' AND vault_scripthash != ''
GROUP BY token_id`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), tokenIDs)
	if err != nil {
		return nil, fmt.Errorf("query vault scripthashes: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		var tokenID, hash string
		if err = rows.Scan(&tokenID, &hash); err != nil {
			return nil, fmt.Errorf("scan vault scripthash: %w", err)
		}
		result[tokenID] = hash
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vault scripthashes: %w", err)
	}
	return result, nil
}
