package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chalkline_generations_total",
		Help: "Timetable generation attempts.",
	}, []string{"status"})

	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chalkline_generation_duration_seconds",
		Help:    "Time spent waiting on the LLM provider per generation.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	})

	TeachersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chalkline_teachers_total",
		Help: "Total number of teachers on the roster.",
	})

	SubjectsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chalkline_subjects_total",
		Help: "Total number of subjects in the catalog.",
	})
)
