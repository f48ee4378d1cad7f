package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	PaymentApproved = "approved"
	PaymentDeclined = "declined"
	PaymentError    = "error"
)

type Metrics struct {
	BookingsConfirmed prometheus.Counter
	Payments          *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BookingsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "salon_bookings_confirmed_total",
			Help: "Bookings persisted with status confirmed.",
		}),
		Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "salon_payments_total",
			Help: "Payment authorization attempts by result.",
		}, []string{"result"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "salon_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.BookingsConfirmed, m.Payments, m.RequestDuration)
	return m
}

func (m *Metrics) PaymentResult(result string) {
	if m == nil {
		return
	}
	m.Payments.WithLabelValues(result).Inc()
}

func (m *Metrics) BookingConfirmed() {
	if m == nil {
		return
	}
	m.BookingsConfirmed.Inc()
}

// Middleware labels by route template so ids do not blow up cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
