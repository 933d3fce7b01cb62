package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inquiriesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kuchnahi_inquiries_submitted_total",
			Help: "Inquiry submissions by outcome (created, invalid, failed).",
		},
		[]string{"outcome"},
	)

	inquiryStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kuchnahi_inquiry_status_updates_total",
			Help: "Successful inquiry status changes by new status.",
		},
		[]string{"status"},
	)

	notifyFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kuchnahi_inquiry_notify_failures_total",
		Help: "Inquiry events that could not be published.",
	})

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kuchnahi_catalog_cache_lookups_total",
			Help: "Catalog cache lookups by catalog and result (hit, miss).",
		},
		[]string{"catalog", "result"},
	)
)
