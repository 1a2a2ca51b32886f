// Package indexer follows the node's active chain, colors every block through the
// acceptance gate and persists token entries and colored outputs.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"go.uber.org/zap"
)

// Config scopes an indexer to one chain.
type Config struct {
	Coin    model.Coin
	Network model.Network
	// StartHeight is the first height indexed into an empty store.
	StartHeight uint64
	BatchSize   uint64
	WorkerCount int
	// ReorgLimit caps how many blocks a rewind may orphan.
	ReorgLimit uint64
}

// Service indexes token activity block by block.
type Service struct {
	logger            *zap.Logger
	coin              model.Coin
	network           model.Network
	startHeight       uint64
	batchSize         uint64
	reorgLimit        uint64
	repo              Repository
	source            BlockSource
	invalidator       ColorInvalidator
	txCache           TxCache
	metrics           Metrics
	processor         *blockProcessor
	newWriter         func() BlockWriter
	wait              func(context.Context, time.Duration, <-chan struct{}) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	blockSignal       <-chan struct{}
}

// NewService builds a Service. blockSignal may be nil, in which case the service polls.
func NewService(
	cfg Config,
	repo Repository,
	source BlockSource,
	colorer BlockColorer,
	invalidator ColorInvalidator,
	txCache TxCache,
	metrics Metrics,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	if cfg.Coin == "" || cfg.Network == "" {
		return nil, errors.New("indexer coin and network are required")
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.ReorgLimit == 0 {
		cfg.ReorgLimit = defaultReorgLimit
	}
	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
	)

	s := &Service{
		logger:            logger,
		coin:              cfg.Coin,
		network:           cfg.Network,
		startHeight:       cfg.StartHeight,
		batchSize:         cfg.BatchSize,
		reorgLimit:        cfg.ReorgLimit,
		repo:              repo,
		source:            source,
		invalidator:       invalidator,
		txCache:           txCache,
		metrics:           metrics,
		wait:              clock.Wait,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		blockSignal:       blockSignal,
		processor: &blockProcessor{
			source:      source,
			colorer:     colorer,
			coin:        cfg.Coin,
			network:     cfg.Network,
			workerCount: cfg.WorkerCount,
			metrics:     metrics,
			logger:      logger.Named("blockProcessor"),
		},
	}
	s.newWriter = func() BlockWriter {
		return newBlockWriter(repo, logger.Named("blockWriter"))
	}
	return s, nil
}

// Run starts the indexing loop until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.wait(ctx, s.sleepDuration, nil); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	started := time.Now()
	next, prev, tip, err := s.pending(ctx)
	s.metrics.ObserveFetchMissing(err, started)
	if err != nil {
		s.logger.Error("find heights to index failed", zap.Error(err))
		return err
	}

	if next > tip {
		s.logger.Debug("index is at the tip; waiting", zap.Uint64("tip", tip))
		return s.wait(ctx, s.longSleepDuration, s.blockSignal)
	}

	last := min(tip, next+s.batchSize-1)
	s.logger.Info("indexing blocks", zap.Uint64("from", next), zap.Uint64("to", last))
	started = time.Now()
	processed, err := s.process(ctx, next, last, prev)
	s.metrics.ObserveProcessBatch(err, processed, started)
	if errors.Is(err, errChainMoved) {
		s.logger.Info("chain moved while indexing", zap.Error(err))
		return nil
	}
	if err != nil {
		return err
	}
	if last < tip {
		return nil
	}
	return s.wait(ctx, s.sleepDuration, s.blockSignal)
}

// pending returns the next height to index, the hash it must build on and the node
// tip. A stored tip that left the active chain is rewound first.
func (s *Service) pending(ctx context.Context) (uint64, *chainhash.Hash, uint64, error) {
	tip, err := s.source.LatestHeight(ctx)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("latest height: %w", err)
	}
	stored, ok, err := s.repo.MaxTokenBlockHeight(ctx, s.coin, s.network)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("max token block height: %w", err)
	}
	if !ok {
		return s.startHeight, nil, tip, nil
	}

	storedHash, ok, err := s.repo.TokenBlockHash(ctx, s.coin, s.network, stored)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("stored hash at height %d: %w", stored, err)
	}
	if !ok {
		return 0, nil, 0, fmt.Errorf("stored height %d has no block hash", stored)
	}
	if stored <= tip {
		nodeHash, err := s.source.BlockHash(ctx, stored)
		if err != nil {
			return 0, nil, 0, fmt.Errorf("node hash at height %d: %w", stored, err)
		}
		if nodeHash.String() == storedHash {
			return stored + 1, &nodeHash, tip, nil
		}
	}

	depth, err := s.rewind(ctx, stored, tip)
	if err != nil {
		return 0, nil, 0, err
	}
	if depth == 0 {
		return 0, nil, 0, fmt.Errorf("stored tip %d left the active chain but nothing was rewound", stored)
	}
	return s.pending(ctx)
}

func (s *Service) process(ctx context.Context, from, to uint64, prev *chainhash.Hash) (processed int, err error) {
	writer := s.newWriter()
	writer.Start(ctx)
	defer func() {
		if stopErr := writer.Stop(); stopErr != nil && err == nil {
			err = fmt.Errorf("write token blocks: %w", stopErr)
		}
	}()

	for h := from; h <= to; h++ {
		insert, processErr := s.processor.Process(ctx, h, prev)
		if processErr != nil {
			return processed, processErr
		}
		if writeErr := writer.WriteBlock(ctx, *insert); writeErr != nil {
			return processed, fmt.Errorf("write block height %d: %w", h, writeErr)
		}
		hash, hashErr := chainhash.NewHashFromStr(insert.Block.Hash)
		if hashErr != nil {
			return processed, hashErr
		}
		prev = hash
		processed++
	}
	return processed, nil
}
