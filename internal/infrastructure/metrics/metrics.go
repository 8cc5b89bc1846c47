package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	TransactionsRecorded *prometheus.CounterVec
	RecordDuration       prometheus.Histogram
	TransactionAmount    prometheus.Histogram
	RecordErrors         *prometheus.CounterVec

	// Snapshot cache metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Outbox metrics
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter

	// Async intake metrics
	QueueMessages *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_transactions_recorded_total",
				Help: "Total number of wallet transactions recorded by direction",
			},
			[]string{"direction"},
		),
		RecordDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gowallet_record_duration_seconds",
			Help:    "Duration of the record-transaction unit of work",
			Buckets: prometheus.DefBuckets,
		}),
		TransactionAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "gowallet_transaction_amount",
			Help:    "Transaction amount magnitudes",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		RecordErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_record_errors_total",
				Help: "Total number of record-transaction failures by type",
			},
			[]string{"error_type"},
		),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_balance_cache_hits_total",
			Help: "Total balance snapshot cache hits",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_balance_cache_misses_total",
			Help: "Total balance snapshot cache misses",
		}),

		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_outbox_events_published_total",
			Help: "Total outbox events published",
		}),
		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "gowallet_outbox_publish_errors_total",
			Help: "Total outbox publish failures",
		}),

		QueueMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gowallet_queue_messages_total",
				Help: "Total queue intake messages by outcome",
			},
			[]string{"outcome"},
		),
	}
}
