package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "lottery"

type Metrics struct {
	PoolsCreated  prometheus.Counter
	Entries       prometheus.Counter
	WinnersPicked prometheus.Counter
	PayoutAmount  *prometheus.CounterVec
	EntropyHeight prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PoolsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pools_created_total",
			Help:      "Number of pools added to the registry.",
		}),
		Entries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_total",
			Help:      "Number of tickets sold.",
		}),
		WinnersPicked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "winners_picked_total",
			Help:      "Number of pools closed with a winner.",
		}),
		PayoutAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_amount_total",
			Help:      "Total amount paid out of pools, in minor units.",
		}, []string{"recipient"}),
		EntropyHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entropy_height",
			Help:      "Current position of the entropy source.",
		}),
	}

	reg.MustRegister(m.PoolsCreated, m.Entries, m.WinnersPicked, m.PayoutAmount, m.EntropyHeight)
	return m
}

// NewNop - метрики без регистрации, для тестов
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
