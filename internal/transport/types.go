package transport

import (
	"context"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BroadcastValidator is the broadcast side of the acceptance gate.
	BroadcastValidator interface {
		ValidateBroadcast(ctx context.Context, tx *wire.MsgTx) (*model.ColoredTx, error)
	}
	TxResolver interface {
		Tx(ctx context.Context, txid chainhash.Hash) (*model.ColoredTx, error)
	}
)
