package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSuccess  = "success"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
	ResultError    = "error"
)

var (
	// RecipeWritesTotal counts recipe create/edit/delete attempts by outcome.
	RecipeWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_writes_total",
			Help: "Total number of recipe write operations",
		},
		[]string{"operation", "result"},
	)

	// IngredientConflictsTotal counts writes that lost an ingredient name race.
	IngredientConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recipe_ingredient_conflicts_total",
		Help: "Total number of recipe writes rejected by a concurrent ingredient insert",
	})

	ListQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "recipe_list_query_duration_seconds",
		Help:    "Recipe list query latency in seconds",
		Buckets: prometheus.DefBuckets,
	})

	RatingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_ratings_total",
			Help: "Total number of recipe rating attempts",
		},
		[]string{"result"},
	)
)

func RecordWrite(operation, result string) {
	RecipeWritesTotal.WithLabelValues(operation, result).Inc()
}

func RecordIngredientConflict() {
	IngredientConflictsTotal.Inc()
}

func ObserveListQuery(d time.Duration) {
	ListQueryDuration.Observe(d.Seconds())
}

func RecordRating(result string) {
	RatingsTotal.WithLabelValues(result).Inc()
}
