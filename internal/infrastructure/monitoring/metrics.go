// Package monitoring provides Prometheus metrics and OpenTelemetry tracing
// for meal plan generation
package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/alchemorsel/mealplan/internal/ports/outbound"
)

const namespace = "mealplan"

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	// Generation metrics
	generationsTotal   *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec

	// Plan metrics
	plansByMealCount  *prometheus.CounterVec
	weeklyCalories    prometheus.Histogram
	skippedAllergens  prometheus.Counter
	lastPlanTimestamp prometheus.Gauge
}

var _ outbound.Metrics = (*MetricsCollector)(nil)

// NewMetricsCollector creates a collector with its own registry so repeated
// construction never collides with the global one
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &MetricsCollector{
		logger:   logger.Named("metrics"),
		registry: registry,

		generationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generations_total",
				Help:      "Total number of meal plan generations",
			},
			[]string{"pipeline", "status"},
		),
		generationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "generation_duration_seconds",
				Help:      "Meal plan generation duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"pipeline"},
		),

		plansByMealCount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "plans_total",
				Help:      "Generated plans by meals per day",
			},
			[]string{"meals"},
		),
		weeklyCalories: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "plan_weekly_calories",
				Help:      "Weekly calories of generated plans",
				Buckets:   prometheus.LinearBuckets(7000, 3500, 8),
			},
		),
		skippedAllergens: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unrecognized_allergens_total",
				Help:      "Allergen names ignored because they were not recognized",
			},
		),
		lastPlanTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_plan_timestamp_seconds",
				Help:      "Unix time of the last generated plan",
			},
		),
	}
}

// RecordGeneration records the outcome and duration of one generation
func (m *MetricsCollector) RecordGeneration(pipeline, status string, duration time.Duration) {
	m.generationsTotal.WithLabelValues(pipeline, status).Inc()
	m.generationDuration.WithLabelValues(pipeline).Observe(duration.Seconds())
}

// RecordPlan records a successfully generated plan
func (m *MetricsCollector) RecordPlan(meals int, weeklyCalories float64) {
	m.plansByMealCount.WithLabelValues(strconv.Itoa(meals)).Inc()
	m.weeklyCalories.Observe(weeklyCalories)
	m.lastPlanTimestamp.SetToCurrentTime()
}

// RecordSkippedAllergens counts allergen names that were ignored
func (m *MetricsCollector) RecordSkippedAllergens(count int) {
	m.skippedAllergens.Add(float64(count))
}

// Registry exposes the collector's registry for gathering
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current metrics in the text exposition format,
// suitable for the node exporter textfile collector
func (m *MetricsCollector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return err
	}
	m.logger.Debug("Metrics written", zap.String("path", path))
	return nil
}

// NopMetrics discards every observation
type NopMetrics struct{}

var _ outbound.Metrics = NopMetrics{}

func (NopMetrics) RecordGeneration(string, string, time.Duration) {}
func (NopMetrics) RecordPlan(int, float64) {}
func (NopMetrics) RecordSkippedAllergens(int) {}
