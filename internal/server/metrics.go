package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// calculationsTotal counts calculator requests by calculator and outcome
	// (ok, invalid, non_amortizing).
	calculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_toolkit_calculations_total",
			Help: "Calculator requests served, by calculator and status.",
		},
		[]string{"calculator", "status"},
	)

	// rateQuotesTotal counts rate quote requests by source (live, fallback).
	rateQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_toolkit_rate_quotes_total",
			Help: "Rate quote requests served, by source.",
		},
		[]string{"source"},
	)
)
