package cache

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		// ColoredOutputsByTxIDs returns the colored outputs of every persisted token tx.
		// A tx with entries but no colored outputs maps to an empty slice.
		ColoredOutputsByTxIDs(ctx context.Context, coin model.Coin, network model.Network, txids []string) (map[string][]model.ColoredOutputRow, error)
		VaultScripthashes(ctx context.Context, coin model.Coin, network model.Network, tokenIDs []string) (map[string]string, error)
		// TokenBlockHash returns the hash stored for height. The flag is false when no block is stored.
		TokenBlockHash(ctx context.Context, coin model.Coin, network model.Network, height uint64) (string, bool, error)
	}
	TxSource interface {
		// FetchTx returns the transaction and the hash of its block, empty when unconfirmed.
		FetchTx(ctx context.Context, txid chainhash.Hash) (*wire.MsgTx, string, error)
	}
	OutputOracle interface {
		SpentOutput(ctx context.Context, outpoint wire.OutPoint) ([]byte, bool, error)
	}
	Colorer interface {
		ColorTx(ctx context.Context, tx *wire.MsgTx, inputs model.ResolvedInputs) *model.ColoredTx
	}
	Metrics interface {
		ObserveLookup(source string, hit bool)
		ObserveInvalidation(removed int)
		SetSize(size int)
	}
)
