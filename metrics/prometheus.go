package metrics

import "github.com/prometheus/client_golang/prometheus"

var HttpRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests received",
	},
	[]string{"endpoint", "status", "method"},
)

var HttpRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint", "method"},
)

var HttpErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_errors_total",
		Help: "Total number of failed HTTP requests (4xx/5xx)",
	},
	[]string{"endpoint", "status", "method"},
)

var GatewaySuccessTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gateway_success_total",
		Help: "Total number of successful SMS gateway calls",
	},
	[]string{"endpoint"},
)

var GatewayFailureTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gateway_failure_total",
		Help: "Total number of failed SMS gateway calls",
	},
	[]string{"endpoint"},
)

var GatewayCallDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "gateway_call_duration_seconds",
		Help:    "Duration of SMS gateway calls in seconds",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

var SmsSubmittedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "sms_submitted_total",
		Help: "Total number of SMS submits by encoding and gateway code",
	},
	[]string{"type", "code"},
)

func InitAPIMetrics() {
	prometheus.MustRegister(HttpRequestsTotal)
	prometheus.MustRegister(HttpRequestDuration)
	prometheus.MustRegister(HttpErrorsTotal)
	prometheus.MustRegister(GatewaySuccessTotal)
	prometheus.MustRegister(GatewayFailureTotal)
	prometheus.MustRegister(GatewayCallDuration)
	prometheus.MustRegister(SmsSubmittedTotal)
}
