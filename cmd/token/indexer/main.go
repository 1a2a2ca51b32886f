package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/engine"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/service/indexer"
)

type config struct {
	ClickhouseDSN    string `long:"clickhouse-dsn" env:"TOKEN_INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin             string `long:"coin" env:"TOKEN_INDEXER_COIN" description:"coin" choice:"XEC" choice:"BCH" default:"XEC"`
	Network          string `long:"network" env:"TOKEN_INDEXER_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" choice:"regtest" default:"mainnet"`
	RPCURL           string `long:"rpc-url" env:"TOKEN_INDEXER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser          string `long:"rpc-user" env:"TOKEN_INDEXER_RPC_USER" description:"node RPC username"`
	RPCPassword      string `long:"rpc-password" env:"TOKEN_INDEXER_RPC_PASSWORD" description:"node RPC password"`
	ZMQAddr          string `long:"zmq-addr" env:"TOKEN_INDEXER_ZMQ_ADDR" description:"node ZMQ endpoint publishing hashblock and rawtx"`
	MetricsAddr      string `long:"metrics-addr" env:"TOKEN_INDEXER_METRICS_ADDR" description:"address serving /metrics" default:":9100"`
	StartHeight      uint64 `long:"start-height" env:"TOKEN_INDEXER_START_HEIGHT" description:"first height indexed into an empty store"`
	BatchSize        uint64 `long:"batch-size" env:"TOKEN_INDEXER_BATCH_SIZE" description:"heights per iteration" default:"100"`
	Workers          int    `long:"workers" env:"TOKEN_INDEXER_WORKERS" description:"txs colored in parallel within a dependency level" default:"16"`
	ReorgLimit       uint64 `long:"reorg-limit" env:"TOKEN_INDEXER_REORG_LIMIT" description:"deepest reorg rewound automatically" default:"100"`
	ColorCacheSize   int    `long:"color-cache-size" env:"TOKEN_INDEXER_COLOR_CACHE_SIZE" description:"colored txs kept in memory" default:"200000"`
	TxCacheBytes     int    `long:"tx-cache-bytes" env:"TOKEN_INDEXER_TX_CACHE_BYTES" description:"raw tx cache size in bytes" default:"268435456"`
	MaxAncestorDepth int    `long:"max-ancestor-depth" env:"TOKEN_INDEXER_MAX_ANCESTOR_DEPTH" description:"deepest uncached ancestor chain colored from the node" default:"64"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("token indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	coin, network := model.Coin(cfg.Coin), model.Network(cfg.Network)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	eng, err := engine.New(engine.Config{
		Coin:             coin,
		Network:          network,
		ColorCacheSize:   cfg.ColorCacheSize,
		TxCacheBytes:     cfg.TxCacheBytes,
		MaxAncestorDepth: cfg.MaxAncestorDepth,
	}, rpc, repo, logger)
	if err != nil {
		return err
	}

	blockSignal, rawTxs, err := startNodeSignals(ctx, cfg.ZMQAddr, logger.Named("zmq"))
	if err != nil {
		return err
	}
	if rawTxs != nil {
		watcher := indexer.NewMempoolWatcher(eng.Gate, logger)
		go func() {
			if err := watcher.Run(ctx, rawTxs); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("mempool watcher stopped", zap.Error(err))
			}
		}()
	}

	serveMetrics(ctx, cfg.MetricsAddr, logger)

	svc, err := indexer.NewService(
		indexer.Config{
			Coin:        coin,
			Network:     network,
			StartHeight: cfg.StartHeight,
			BatchSize:   cfg.BatchSize,
			WorkerCount: cfg.Workers,
			ReorgLimit:  cfg.ReorgLimit,
		},
		repo,
		eng.Blocks,
		eng.Gate,
		eng.Cache,
		eng.Txs,
		metrics.NewIndexer(coin, network),
		logger,
		blockSignal,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func serveMetrics(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	s := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
	go func() {
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
