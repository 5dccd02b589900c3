package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpdatesTotal подсчитывает обработанные сообщения по результату
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Total number of processed bot updates",
		},
		[]string{"result"},
	)

	// StoreErrorsTotal подсчитывает замаскированные ошибки хранилища
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total number of masked storage errors",
		},
		[]string{"operation"},
	)
)
