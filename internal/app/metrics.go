package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Draws        *prometheus.CounterVec
	DrawFailures *prometheus.CounterVec
	Tickets      *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Draws: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lotterybox_draws_total",
			Help: "Tickets drawn from the pool",
		}, []string{"pool", "item"}),
		DrawFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lotterybox_draw_failures_total",
			Help: "Draws attempted on an empty pool",
		}, []string{"pool"}),
		Tickets: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "lotterybox_tickets",
			Help: "Tickets left in the pool",
		}, []string{"pool"}),
	}
}
