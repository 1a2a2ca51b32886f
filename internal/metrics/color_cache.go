package metrics

import (
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-tokens/internal/token/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	colorCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "color_cache",
		Name:      "lookups_total",
		Help:      "Color lookups by the source that answered them.",
	}, []string{"coin", "network", "source", "hit"})
	colorCacheInvalidated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "color_cache",
		Name:      "invalidated_entries_total",
		Help:      "Entries dropped by invalidation, dependents included.",
	}, []string{"coin", "network"})
	colorCacheSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "color_cache",
		Name:      "entries",
		Help:      "Colored transactions currently cached.",
	}, []string{"coin", "network"})
)

// ColorCache tracks the color resolution cache and the lookups behind it.
type ColorCache struct {
	coin    string
	network string
}

func NewColorCache(coin model.Coin, network model.Network) *ColorCache {
	return &ColorCache{coin: labelOrUnknown(string(coin)), network: labelOrUnknown(string(network))}
}

func (m ColorCache) ObserveLookup(source string, hit bool) {
	colorCacheLookups.WithLabelValues(m.coin, m.network, source, strconv.FormatBool(hit)).Inc()
}

func (m ColorCache) ObserveInvalidation(removed int) {
	colorCacheInvalidated.WithLabelValues(m.coin, m.network).Add(float64(removed))
}

func (m ColorCache) SetSize(size int) {
	colorCacheSize.WithLabelValues(m.coin, m.network).Set(float64(size))
}
