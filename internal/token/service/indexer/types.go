package indexer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		BlockHash(ctx context.Context, height uint64) (chainhash.Hash, error)
		FetchBlock(ctx context.Context, height uint64) (*bitcoin.Block, error)
	}
	Repository interface {
		MaxTokenBlockHeight(ctx context.Context, coin model.Coin, network model.Network) (uint64, bool, error)
		TokenBlockHash(ctx context.Context, coin model.Coin, network model.Network, height uint64) (string, bool, error)
		DeleteFromHeight(ctx context.Context, coin model.Coin, network model.Network, height uint64) error
		InsertTokenBlocks(ctx context.Context, blocks []model.TokenBlock) error
		InsertTokenEntries(ctx context.Context, entries []model.TokenEntryRow) error
		InsertColoredOutputs(ctx context.Context, outputs []model.ColoredOutputRow) error
	}
	// BlockColorer colors confirmed txs. The acceptance gate satisfies it.
	BlockColorer interface {
		ColorForIndex(ctx context.Context, tx *wire.MsgTx, block chainhash.Hash) (*model.ColoredTx, error)
	}
	MempoolAcceptor interface {
		AcceptMempool(ctx context.Context, tx *wire.MsgTx) (*model.ColoredTx, error)
	}
	// ColorInvalidator drops the colors of an orphaned block and of everything spending them.
	ColorInvalidator interface {
		InvalidateBlock(hash chainhash.Hash) int
	}
	TxCache interface {
		Reset()
	}
	BlockWriter interface {
		Start(ctx context.Context)
		Stop() error
		WriteBlock(ctx context.Context, b model.InsertTokenBlock) error
	}
	Metrics interface {
		ObserveFetchMissing(err error, started time.Time)
		ObserveProcessBatch(err error, heights int, started time.Time)
		ObserveProcessHeight(err error, height uint64, started time.Time)
		ObserveReorg(depth uint64)
	}
)
