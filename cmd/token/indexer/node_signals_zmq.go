//go:build zmq

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

const rawTxBuffer = 1024

// startNodeSignals subscribes to hashblock and rawtx. A new block wakes the indexer;
// relayed txs feed the mempool watcher and are dropped when it falls behind.
func startNodeSignals(ctx context.Context, addr string, logger *zap.Logger) (<-chan struct{}, <-chan []byte, error) {
	if addr == "" {
		return nil, nil, nil
	}

	sub, err := newSubscriber(addr, "hashblock", "rawtx")
	if err != nil {
		return nil, nil, fmt.Errorf("connect zmq: %w", err)
	}

	notify := make(chan struct{}, 1)
	rawTxs := make(chan []byte, rawTxBuffer)

	go func() {
		defer sub.Close()
		defer close(rawTxs)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			msgParts, err := sub.RecvMessageBytes(0)
			if err != nil {
				logger.Warn("zmq recv failed", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if len(msgParts) < 2 {
				logger.Warn("skip malformed zmq message", zap.Int("parts", len(msgParts)))
				continue
			}

			switch string(msgParts[0]) {
			case "hashblock":
				select {
				case notify <- struct{}{}:
				default:
				}
			case "rawtx":
				select {
				case rawTxs <- msgParts[1]:
				default:
					logger.Warn("mempool watcher behind, dropping relayed tx")
				}
			}
		}
	}()

	return notify, rawTxs, nil
}

func newSubscriber(addr string, topics ...string) (*zmq4.Socket, error) {
	sub, err := zmq4.NewSocket(zmq4.SUB)
	if err != nil {
		return nil, err
	}

	for _, topic := range topics {
		if err := sub.SetSubscribe(topic); err != nil {
			sub.Close()
			return nil, err
		}
	}

	if err := sub.Connect(addr); err != nil {
		sub.Close()
		return nil, err
	}
	return sub, nil
}
