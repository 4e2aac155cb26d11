package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "gridloom_http_requests_total"
	MetricNameHTTPRequestDuration  = "gridloom_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "gridloom_http_requests_in_flight"

	MetricNameListingsCreated   = "gridloom_market_listings_created_total"
	MetricNameListingsCanceled  = "gridloom_market_listings_canceled_total"
	MetricNamePurchases         = "gridloom_market_purchases_total"
	MetricNamePurchaseConflicts = "gridloom_market_purchase_conflicts_total"
	MetricNameCoinsTransferred  = "gridloom_market_coins_transferred_total"

	MetricNameEventsPublished    = "gridloom_events_published_total"
	MetricNameEventHandlerErrors = "gridloom_event_handler_errors_total"

	MetricNameCacheHits   = "gridloom_account_cache_hits_total"
	MetricNameCacheMisses = "gridloom_account_cache_misses_total"
)

// Help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextListingsCreated   = "Total number of listings created"
	HelpTextListingsCanceled  = "Total number of listings canceled"
	HelpTextPurchases         = "Total number of completed purchases"
	HelpTextPurchaseConflicts = "Total number of purchases lost to a concurrent buyer"
	HelpTextCoinsTransferred  = "Total coins moved between accounts by purchases"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextCacheHits   = "Total number of account cache hits"
	HelpTextCacheMisses = "Total number of account cache misses"
)

// Labels
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
	LabelSlot   = "slot"
	LabelType   = "type"
)

// HTTPLatencyBuckets covers the expected latency range of store-backed requests
var HTTPLatencyBuckets = prometheus.DefBuckets
