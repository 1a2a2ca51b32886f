package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/engine"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/transport"
)

type config struct {
	Addr             string `long:"addr" env:"TOKEN_API_ADDR" description:"grpc addr" default:":8000"`
	RestAddr         string `long:"rest-addr" env:"TOKEN_API_REST_ADDR" description:"rest addr" default:":8001"`
	ClickhouseDSN    string `long:"clickhouse-dsn" env:"TOKEN_API_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	Coin             string `long:"coin" env:"TOKEN_API_COIN" description:"coin" choice:"XEC" choice:"BCH" default:"XEC"`
	Network          string `long:"network" env:"TOKEN_API_NETWORK" description:"network name" choice:"mainnet" choice:"testnet" choice:"regtest" default:"mainnet"`
	RPCURL           string `long:"rpc-url" env:"TOKEN_API_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser          string `long:"rpc-user" env:"TOKEN_API_RPC_USER" description:"node RPC username"`
	RPCPassword      string `long:"rpc-password" env:"TOKEN_API_RPC_PASSWORD" description:"node RPC password"`
	ColorCacheSize   int    `long:"color-cache-size" env:"TOKEN_API_COLOR_CACHE_SIZE" description:"colored txs kept in memory" default:"50000"`
	TxCacheBytes     int    `long:"tx-cache-bytes" env:"TOKEN_API_TX_CACHE_BYTES" description:"raw tx cache size in bytes" default:"67108864"`
	MaxAncestorDepth int    `long:"max-ancestor-depth" env:"TOKEN_API_MAX_ANCESTOR_DEPTH" description:"deepest uncached ancestor chain colored from the node" default:"64"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		logger.Fatal("Init repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("Close repository", zap.Error(err))
		}
	}()

	rpc, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		logger.Fatal("Init rpc client", zap.Error(err))
	}
	defer func() {
		rpc.Shutdown()
		rpc.WaitForShutdown()
	}()

	eng, err := engine.New(engine.Config{
		Coin:             model.Coin(cfg.Coin),
		Network:          model.Network(cfg.Network),
		ColorCacheSize:   cfg.ColorCacheSize,
		TxCacheBytes:     cfg.TxCacheBytes,
		MaxAncestorDepth: cfg.MaxAncestorDepth,
	}, rpc, repo, logger)
	if err != nil {
		logger.Fatal("Init engine", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	grpcPrometheus.EnableHandlingTimeHistogram()

	healthpb.RegisterHealthServer(grpcServer, transport.NewHealthServer())
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("net.Listen error", zap.Error(err))
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Fatal("Start GRPC server", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	mux := http.NewServeMux()

	gw := gwruntime.NewServeMux()
	if err := transport.NewTokenHandler(eng.Gate, eng.Resolver, logger.Named("tokenHandler")).Register(gw); err != nil {
		logger.Fatal("Register token handler", zap.Error(err))
	}

	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
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
