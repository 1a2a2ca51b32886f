package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerFetchMissingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_indexer",
		Name:      "fetch_missing_total",
		Help:      "Count of attempts to find heights to index.",
	}, []string{"coin", "network", "status"})

	indexerFetchMissingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_indexer",
		Name:      "fetch_missing_duration_seconds",
		Help:      "Duration of finding heights to index, tip checks included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	indexerProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_indexer",
		Name:      "process_batch_total",
		Help:      "Count of indexer batches processed.",
	}, []string{"coin", "network", "status"})

	indexerProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_indexer",
		Name:      "process_batch_size",
		Help:      "Number of heights processed per indexer batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"coin", "network"})

	indexerProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_indexer",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of coloring one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	indexerReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_indexer",
		Name:      "reorgs_total",
		Help:      "Count of chain reorganizations rewound.",
	}, []string{"coin", "network"})

	indexerReorgDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_indexer",
		Name:      "reorg_depth_blocks",
		Help:      "Number of orphaned blocks per reorganization.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	}, []string{"coin", "network"})

	indexerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "token_indexer",
		Name:      "indexed_height",
		Help:      "Highest block height colored by the indexer.",
	}, []string{"coin", "network"})
)

// Indexer tracks metrics for the token indexer loop.
type Indexer struct {
	coin    string
	network string
}

// NewIndexer constructs an Indexer with defaults.
func NewIndexer(coin model.Coin, network model.Network) *Indexer {
	return &Indexer{coin: labelOrUnknown(string(coin)), network: labelOrUnknown(string(network))}
}

// ObserveFetchMissing records a fetch attempt outcome and duration.
func (m Indexer) ObserveFetchMissing(err error, started time.Time) {
	indexerFetchMissingTotal.WithLabelValues(m.coin, m.network, status(err)).Inc()
	indexerFetchMissingDuration.WithLabelValues(m.coin, m.network, status(err)).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records a batch of heights.
func (m Indexer) ObserveProcessBatch(err error, heights int, _ time.Time) {
	indexerProcessBatchTotal.WithLabelValues(m.coin, m.network, status(err)).Inc()
	if heights > 0 {
		indexerProcessBatchSize.WithLabelValues(m.coin, m.network).Observe(float64(heights))
	}
}

// ObserveProcessHeight records the coloring of one block.
func (m Indexer) ObserveProcessHeight(err error, height uint64, started time.Time) {
	indexerProcessHeightDuration.WithLabelValues(m.coin, m.network, status(err)).
		Observe(time.Since(started).Seconds())
	if err == nil {
		indexerHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
	}
}

// ObserveReorg records a rewind over depth orphaned blocks.
func (m Indexer) ObserveReorg(depth uint64) {
	indexerReorgsTotal.WithLabelValues(m.coin, m.network).Inc()
	indexerReorgDepth.WithLabelValues(m.coin, m.network).Observe(float64(depth))
}
