package gate

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/cache"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	InputResolver interface {
		Resolve(ctx context.Context, tx *wire.MsgTx) (model.ResolvedInputs, error)
	}
	Colorer interface {
		ColorTx(ctx context.Context, tx *wire.MsgTx, inputs model.ResolvedInputs) *model.ColoredTx
	}
	ColorStore interface {
		Put(tx *model.ColoredTx, tag cache.Tag, deps []chainhash.Hash)
	}
	Metrics interface {
		ObserveBroadcast(err error, started time.Time)
		ObserveIndex(err error, started time.Time)
		ObserveMempool(err error, started time.Time)
	}
)
