package metrics

import (
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coloredTxsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "coloring",
		Name:      "txs_total",
		Help:      "Colored transactions by decoded payload kind.",
	}, []string{"coin", "network", "kind", "invalid"})
	colorTxDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "coloring",
		Name:      "tx_duration_seconds",
		Help:      "Duration of decoding, coloring and burn reconciliation of one tx.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
	}, []string{"coin", "network", "kind"})

	gateRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "acceptance_gate",
		Name:      "requests_total",
		Help:      "Acceptance gate calls by entry point.",
	}, []string{"coin", "network", "entry", "status"})
	gateRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "acceptance_gate",
		Name:      "request_duration_seconds",
		Help:      "Duration of acceptance gate calls, input resolution included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "entry", "status"})
)

// Coloring tracks the validator and the acceptance gate wrapped around it.
type Coloring struct {
	coin    string
	network string
}

// NewColoring constructs a Coloring metrics collector.
func NewColoring(coin model.Coin, network model.Network) *Coloring {
	return &Coloring{coin: labelOrUnknown(string(coin)), network: labelOrUnknown(string(network))}
}

// ObserveColorTx records one validator run.
func (m Coloring) ObserveColorTx(kind string, invalid bool, started time.Time) {
	coloredTxsTotal.WithLabelValues(m.coin, m.network, kind, strconv.FormatBool(invalid)).Inc()
	colorTxDuration.WithLabelValues(m.coin, m.network, kind).Observe(time.Since(started).Seconds())
}

func (m Coloring) ObserveBroadcast(err error, started time.Time) {
	m.observeGate("broadcast", err, started)
}

func (m Coloring) ObserveIndex(err error, started time.Time) {
	m.observeGate("index", err, started)
}

func (m Coloring) ObserveMempool(err error, started time.Time) {
	m.observeGate("mempool", err, started)
}

func (m Coloring) observeGate(entry string, err error, started time.Time) {
	gateRequestsTotal.WithLabelValues(m.coin, m.network, entry, status(err)).Inc()
	gateRequestDuration.WithLabelValues(m.coin, m.network, entry, status(err)).Observe(time.Since(started).Seconds())
}
