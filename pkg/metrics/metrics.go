package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Pokemon cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in pokemon cache",
		},
	)
)

var (
	FavoritesToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_toggles_total",
			Help: "Favorite toggles by resulting action",
		},
		[]string{"action"}, // added|removed
	)
	FavoritesCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "favorites_count",
			Help: "Number of favorite names in memory",
		},
	)
	SnapshotFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "favorites_snapshot_fetches_total",
			Help: "Snapshot fetches after adding a favorite",
		},
		[]string{"result"}, // ok|failed|stale
	)
	KVErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kv_store_errors_total",
			Help: "Swallowed key-value store errors",
		},
		[]string{"op"}, // get|set|remove|parse
	)
)

var (
	PokeAPIRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pokeapi_requests_total",
			Help: "Outbound PokeAPI requests",
		},
		[]string{"resource", "status"},
	)
	PokeAPIDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pokeapi_request_duration_seconds",
			Help:    "Outbound PokeAPI request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)
)

// MustRegister — регистрирует коллекторы; повторная регистрация не паникует.
func MustRegister() {
	collectors := []prometheus.Collector{
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize,
		FavoritesToggles, FavoritesCount, SnapshotFetches, KVErrors,
		PokeAPIRequests, PokeAPIDuration,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				panic(err)
			}
		}
	}
}
