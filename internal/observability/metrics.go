package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinnerdate",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dinnerdate",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	ordersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dinnerdate",
			Subsystem: "orders",
			Name:      "placed_total",
			Help:      "Orders placed.",
		},
	)
	ordersCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dinnerdate",
			Subsystem: "orders",
			Name:      "completed_total",
			Help:      "Orders that reached Completed.",
		},
	)
	coinsCredited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinnerdate",
			Subsystem: "coins",
			Name:      "credited_total",
			Help:      "Coins credited to the household balance.",
		},
		[]string{"reason"},
	)
	coinsSpent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "dinnerdate",
			Subsystem: "coins",
			Name:      "spent_total",
			Help:      "Coins spent on reward redemptions.",
		},
	)
	achievementUnlocks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinnerdate",
			Subsystem: "achievements",
			Name:      "unlocked_total",
			Help:      "Achievement unlocks.",
		},
		[]string{"id"},
	)
	rewardRedemptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dinnerdate",
			Subsystem: "rewards",
			Name:      "redemptions_total",
			Help:      "Successful reward redemptions.",
		},
		[]string{"id"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests, httpDuration,
			ordersPlaced, ordersCompleted,
			coinsCredited, coinsSpent,
			achievementUnlocks, rewardRedemptions,
		)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordOrderPlaced() {
	RegisterMetrics()
	ordersPlaced.Inc()
}

func RecordOrderCompleted() {
	RegisterMetrics()
	ordersCompleted.Inc()
}

func RecordCoinsCredited(reason string, amount int) {
	RegisterMetrics()
	coinsCredited.WithLabelValues(reason).Add(float64(amount))
}

func RecordCoinsSpent(amount int) {
	RegisterMetrics()
	coinsSpent.Add(float64(amount))
}

func RecordAchievementUnlock(id string) {
	RegisterMetrics()
	achievementUnlocks.WithLabelValues(id).Inc()
}

func RecordRewardRedemption(id string) {
	RegisterMetrics()
	rewardRedemptions.WithLabelValues(id).Inc()
}
