// Package validator colors a single transaction from its payload and resolved inputs.
package validator

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/burn"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/coloring"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/payload"
	"go.uber.org/zap"
)

// Validator runs decoding, coloring and burn reconciliation for one transaction.
type Validator struct {
	metrics Metrics
	logger  *zap.Logger
}

func New(metrics Metrics, logger *zap.Logger) *Validator {
	return &Validator{
		metrics: metrics,
		logger:  logger.Named("validator"),
	}
}

// ColorTx colors tx. It performs no I/O: every input must already be resolved.
func (v *Validator) ColorTx(_ context.Context, tx *wire.MsgTx, inputs model.ResolvedInputs) *model.ColoredTx {
	started := time.Now()
	txid := tx.TxHash()

	decoded := payload.Decode(txid, tx.TxOut)
	colored := coloring.Color(txid, len(tx.TxOut), decoded)
	result := burn.Reconcile(colored, inputs)

	for _, failure := range result.FailedParsings {
		v.logger.Debug("failed parsing",
			zap.Stringer("txid", txid),
			zap.Int("pushdata_idx", failure.PushdataIdx),
			zap.String("message", failure.Message),
		)
	}
	v.metrics.ObserveColorTx(decoded.Kind.String(), result.HasInvalidEntries(), started)
	return result
}
