package metrics

import (
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "coin", "network", "status"})
	nodeRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
	nodeTxCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "rpc_client",
		Name:      "tx_cache_lookups_total",
		Help:      "Raw transaction cache lookups in front of the node.",
	}, []string{"coin", "network", "hit"})
)

// RPCClient tracks metrics for RPC calls to the node and the raw tx cache in front of it.
type RPCClient struct {
	coin    string
	network string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	return &RPCClient{coin: labelOrUnknown(string(coin)), network: labelOrUnknown(string(network))}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	nodeRPCRequestsTotal.WithLabelValues(operation, m.coin, m.network, status(err)).Inc()
	nodeRPCRequestDuration.WithLabelValues(operation, m.coin, m.network, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveTxCache records a raw tx cache lookup.
func (m RPCClient) ObserveTxCache(hit bool) {
	nodeTxCacheLookups.WithLabelValues(m.coin, m.network, strconv.FormatBool(hit)).Inc()
}
