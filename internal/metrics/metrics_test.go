package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.BookingConfirmed()
	m.PaymentResult(PaymentApproved)
	m.PaymentResult(PaymentDeclined)
	m.PaymentResult(PaymentDeclined)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsConfirmed))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Payments.WithLabelValues(PaymentDeclined)))

	var nilMetrics *Metrics
	nilMetrics.BookingConfirmed()
}

func TestMiddleware_ObservesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := New(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))

	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
	n, err := testutil.GatherAndCount(reg, "salon_http_request_duration_seconds")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
