package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ListRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_list_requests_total",
		Help: "The total number of processed list requests",
	}, []string{"entity"})
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_hits_total",
		Help: "The total number of list responses served from cache",
	}, []string{"entity"})
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_cache_misses_total",
		Help: "The total number of list responses computed",
	}, []string{"entity"})
	LoadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_load_failures_total",
		Help: "The total number of failed collection loads",
	}, []string{"entity"})
	Writes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_writes_total",
		Help: "The total number of create, update and delete calls",
	}, []string{"entity", "op"})
	Inquiries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_inquiries_total",
		Help: "The total number of accepted inquiries",
	}, []string{"kind"})
	CollectionSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "catalog_collection_size",
		Help: "Records in the last loaded collection",
	}, []string{"entity"})
)
