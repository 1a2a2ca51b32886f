package indexer

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"
)

// rewind walks back from the stored tip until the stored hash matches the node's
// active chain, then drops every orphaned height from storage and caches. It returns
// the number of orphaned blocks.
func (s *Service) rewind(ctx context.Context, stored, tip uint64) (uint64, error) {
	var orphans []chainhash.Hash
	fork := stored + 1
	for h := stored; ; h-- {
		storedHash, ok, err := s.repo.TokenBlockHash(ctx, s.coin, s.network, h)
		if err != nil {
			return 0, fmt.Errorf("stored hash at height %d: %w", h, err)
		}
		if !ok {
			break
		}
		if h <= tip {
			nodeHash, err := s.source.BlockHash(ctx, h)
			if err != nil {
				return 0, fmt.Errorf("node hash at height %d: %w", h, err)
			}
			if nodeHash.String() == storedHash {
				break
			}
		}
		orphan, err := chainhash.NewHashFromStr(storedHash)
		if err != nil {
			return 0, fmt.Errorf("stored hash at height %d: %w", h, err)
		}
		orphans = append(orphans, *orphan)
		fork = h
		if uint64(len(orphans)) > s.reorgLimit {
			return 0, fmt.Errorf("reorg below height %d exceeds %d blocks", h, s.reorgLimit)
		}
		if h == 0 {
			break
		}
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	if err := s.repo.DeleteFromHeight(ctx, s.coin, s.network, fork); err != nil {
		return 0, fmt.Errorf("delete from height %d: %w", fork, err)
	}
	removed := 0
	for _, orphan := range orphans {
		removed += s.invalidator.InvalidateBlock(orphan)
	}
	s.txCache.Reset()

	depth := uint64(len(orphans))
	s.metrics.ObserveReorg(depth)
	s.logger.Warn("rewound chain reorganization",
		zap.Uint64("fork_height", fork),
		zap.Uint64("depth", depth),
		zap.Int("invalidated", removed),
	)
	return depth, nil
}
