package db

import "github.com/prometheus/client_golang/prometheus"

// rosterMetrics tracks occupancy and rejected inserts for one RosterService
type rosterMetrics struct {
	students prometheus.Gauge
	capacity prometheus.Gauge
	rejected prometheus.Counter
}

func newRosterMetrics(reg prometheus.Registerer) *rosterMetrics {
	m := &rosterMetrics{
		students: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_students",
			Help: "Number of students currently stored in the roster.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_capacity",
			Help: "Maximum number of students the roster can hold.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roster_insert_rejected_total",
			Help: "Inserts rejected because the roster was full.",
		}),
	}
	reg.MustRegister(m.students, m.capacity, m.rejected)
	return m
}
