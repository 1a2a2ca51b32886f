package indexer

import "time"

const (
	defaultWorkerCount = 16
	defaultBatchSize   = 100
	defaultReorgLimit  = 100

	sleepDuration     = 5 * time.Second
	longSleepDuration = 1 * time.Minute

	blockBatcherCapacity      = 50
	blockBatcherFlushInterval = 2 * time.Second
	blockBatcherRPS           = 20

	rowFlushThreshold = 10_000
)
