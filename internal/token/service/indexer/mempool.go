package indexer

import (
	"bytes"
	"context"

	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"
)

// MempoolWatcher colors transactions the node relays before they are mined, so their
// descendants resolve from the cache.
type MempoolWatcher struct {
	acceptor MempoolAcceptor
	logger   *zap.Logger
}

func NewMempoolWatcher(acceptor MempoolAcceptor, logger *zap.Logger) *MempoolWatcher {
	return &MempoolWatcher{acceptor: acceptor, logger: logger.Named("mempool")}
}

// Run consumes serialized txs until the context is canceled or rawTxs is closed.
func (w *MempoolWatcher) Run(ctx context.Context, rawTxs <-chan []byte) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-rawTxs:
			if !ok {
				return nil
			}
			w.handle(ctx, raw)
		}
	}
}

func (w *MempoolWatcher) handle(ctx context.Context, raw []byte) {
	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		w.logger.Warn("skip undecodable mempool tx", zap.Error(err), zap.Int("bytes", len(raw)))
		return
	}
	colored, err := w.acceptor.AcceptMempool(ctx, &tx)
	if err != nil {
		w.logger.Warn("color mempool tx failed", zap.Stringer("txid", tx.TxHash()), zap.Error(err))
		return
	}
	if colored.IsColored() {
		w.logger.Debug("colored mempool tx",
			zap.Stringer("txid", colored.TxID),
			zap.Int("entries", len(colored.Entries)),
			zap.Bool("invalid", colored.HasInvalidEntries()),
		)
	}
}
