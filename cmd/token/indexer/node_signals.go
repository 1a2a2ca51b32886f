//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startNodeSignals without the zmq build tag leaves the indexer polling.
func startNodeSignals(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, <-chan []byte, error) {
	if addr != "" {
		logger.Warn("zmq address ignored, binary built without the zmq tag", zap.String("addr", addr))
	}
	return nil, nil, nil
}
