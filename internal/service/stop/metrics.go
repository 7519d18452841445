package stop

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stop_terminal_transitions_total",
		Help: "Total number of committed stop terminal transitions",
	},
	[]string{"status"},
)
