// Package gate applies the acceptance policy to colored transactions: broadcasts are
// rejected on invalid burns or malformed token data while confirmed transactions are always indexed.
package gate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/cache"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"go.uber.org/zap"
)

// BroadcastError rejects a transaction that would burn tokens unexpectedly or that
// carries token data which failed to parse or color.
type BroadcastError struct {
	Tx        *model.ColoredTx
	Summaries []string
	Failures  []string
}

func (e *BroadcastError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Summaries) > 0 {
		parts = append(parts, "Invalid token burns: "+strings.Join(e.Summaries, "; "))
	}
	if len(e.Failures) > 0 {
		parts = append(parts, "Invalid token tx: "+strings.Join(e.Failures, "; "))
	}
	return strings.Join(parts, ". ")
}

func broadcastError(colored *model.ColoredTx) *BroadcastError {
	rejected := &BroadcastError{Tx: colored}
	for _, failure := range colored.FailedParsings {
		rejected.Failures = append(rejected.Failures, fmt.Sprintf("parse failure at pushdata idx %d: %s", failure.PushdataIdx, failure.Message))
	}
	for _, entry := range colored.Entries {
		if entry.IsInvalid {
			rejected.Summaries = append(rejected.Summaries, entry.BurnSummary)
		}
		for _, failure := range entry.FailedColorings {
			rejected.Failures = append(rejected.Failures, fmt.Sprintf("coloring failure at pushdata idx %d: %s", failure.PushdataIdx, failure.Message))
		}
	}
	if len(rejected.Summaries) == 0 && len(rejected.Failures) == 0 {
		return nil
	}
	return rejected
}

// Gate shares one coloring path between the broadcast and indexing entry points.
type Gate struct {
	resolver InputResolver
	colorer  Colorer
	store    ColorStore
	metrics  Metrics
	logger   *zap.Logger
}

func New(resolver InputResolver, colorer Colorer, store ColorStore, metrics Metrics, logger *zap.Logger) *Gate {
	return &Gate{
		resolver: resolver,
		colorer:  colorer,
		store:    store,
		metrics:  metrics,
		logger:   logger.Named("gate"),
	}
}

// ValidateBroadcast colors an unconfirmed tx and rejects it with *BroadcastError when any
// entry is invalid or any section failed to parse or color. Accepted txs are cached as mempool.
func (g *Gate) ValidateBroadcast(ctx context.Context, tx *wire.MsgTx) (_ *model.ColoredTx, err error) {
	started := time.Now()
	defer func() {
		g.metrics.ObserveBroadcast(err, started)
	}()

	colored, err := g.color(ctx, tx)
	if err != nil {
		return nil, err
	}
	if rejected := broadcastError(colored); rejected != nil {
		g.logger.Debug("rejected broadcast", zap.Stringer("txid", colored.TxID), zap.Error(rejected))
		return colored, rejected
	}
	g.remember(colored, cache.Mempool(), tx)
	return colored, nil
}

// AcceptMempool colors a tx the node already relayed. It is cached as mempool even
// with invalid entries, since its descendants will spend it regardless.
// Txs that touch no token are never cached.
func (g *Gate) AcceptMempool(ctx context.Context, tx *wire.MsgTx) (_ *model.ColoredTx, err error) {
	started := time.Now()
	defer func() {
		g.metrics.ObserveMempool(err, started)
	}()

	colored, err := g.color(ctx, tx)
	if err != nil {
		return nil, err
	}
	g.remember(colored, cache.Mempool(), tx)
	return colored, nil
}

// ColorForIndex colors a confirmed tx and always accepts it, invalid burns included.
func (g *Gate) ColorForIndex(ctx context.Context, tx *wire.MsgTx, block chainhash.Hash) (_ *model.ColoredTx, err error) {
	started := time.Now()
	defer func() {
		g.metrics.ObserveIndex(err, started)
	}()

	colored, err := g.color(ctx, tx)
	if err != nil {
		return nil, err
	}
	g.remember(colored, cache.Block(block), tx)
	return colored, nil
}

// remember caches colored txs only. A tx without entries or parse failures has no
// colored outputs for its descendants to read.
func (g *Gate) remember(colored *model.ColoredTx, tag cache.Tag, tx *wire.MsgTx) {
	if !colored.IsColored() {
		return
	}
	g.store.Put(colored, tag, cache.Deps(tx))
}

func (g *Gate) color(ctx context.Context, tx *wire.MsgTx) (*model.ColoredTx, error) {
	inputs, err := g.resolver.Resolve(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("resolve inputs of %s: %w", tx.TxHash(), err)
	}
	return g.colorer.ColorTx(ctx, tx, inputs), nil
}
