package bitcoin

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// OutputOracle answers what script an outpoint locks and whether it is confirmed.
type OutputOracle struct {
	rpc RPCClient
}

func NewOutputOracle(rpc RPCClient) *OutputOracle {
	return &OutputOracle{rpc: rpc}
}

// SpentOutput returns the locking script of outpoint and whether its tx is in a block.
func (o *OutputOracle) SpentOutput(ctx context.Context, outpoint wire.OutPoint) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	res, err := o.rpc.GetRawTransactionVerbose(&outpoint.Hash)
	if err != nil {
		return nil, false, fmt.Errorf("get raw transaction %s: %w", outpoint.Hash, err)
	}
	for _, out := range res.Vout {
		if out.N != outpoint.Index {
			continue
		}
		script, err := hex.DecodeString(out.ScriptPubKey.Hex)
		if err != nil {
			return nil, false, fmt.Errorf("decode script of %s: %w", outpoint, err)
		}
		return script, res.Confirmations > 0, nil
	}
	return nil, false, fmt.Errorf("output %s not found", outpoint)
}
