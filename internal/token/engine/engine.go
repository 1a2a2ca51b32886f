// Package engine assembles the coloring stack for one chain: node adapters, the color
// cache with its resolver, the validator and the acceptance gate.
package engine

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/cache"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/gate"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/validator"
	"go.uber.org/zap"
)

// Config sizes the stack.
type Config struct {
	Coin             model.Coin
	Network          model.Network
	ColorCacheSize   int
	TxCacheBytes     int
	MaxAncestorDepth int
}

// Engine holds the wired components.
type Engine struct {
	Blocks   *bitcoin.BlockSource
	Txs      *bitcoin.TxSource
	Cache    *cache.ColorCache
	Resolver *cache.Resolver
	Gate     *gate.Gate
}

// New wires the stack on top of a node client and the token repository.
func New(cfg Config, rpc bitcoin.RPCClient, repo cache.Repository, logger *zap.Logger) (*Engine, error) {
	if cfg.Coin == "" || cfg.Network == "" {
		return nil, errors.New("engine coin and network are required")
	}
	if cfg.MaxAncestorDepth <= 0 {
		return nil, fmt.Errorf("max ancestor depth must be positive, got %d", cfg.MaxAncestorDepth)
	}

	rpcMetrics := metrics.NewRPCClient(cfg.Coin, cfg.Network)
	observed := bitcoin.NewObservedClient(rpc, rpcMetrics)

	colorCache, err := cache.NewColorCache(cfg.ColorCacheSize, metrics.NewColorCache(cfg.Coin, cfg.Network))
	if err != nil {
		return nil, fmt.Errorf("init color cache: %w", err)
	}

	coloring := metrics.NewColoring(cfg.Coin, cfg.Network)
	v := validator.New(coloring, logger)
	txs := bitcoin.NewTxSource(observed, cfg.TxCacheBytes, rpcMetrics)
	resolver := cache.NewResolver(
		colorCache,
		repo,
		txs,
		bitcoin.NewOutputOracle(observed),
		v,
		cfg.Coin,
		cfg.Network,
		cfg.MaxAncestorDepth,
		metrics.NewColorCache(cfg.Coin, cfg.Network),
		logger,
	)

	return &Engine{
		Blocks:   bitcoin.NewBlockSource(observed),
		Txs:      txs,
		Cache:    colorCache,
		Resolver: resolver,
		Gate:     gate.New(resolver, v, colorCache, coloring, logger),
	}, nil
}
