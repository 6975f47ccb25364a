package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("Success: loads and aggregations are counted", func(t *testing.T) {
		c := NewCollector("nobel")

		c.ObserveLoad("prize", nil)
		c.ObserveLoad("laureate", errors.New("boom"))
		c.ObserveAggregation(nil)
		c.SetRecords("laureate", 12)

		assert.Equal(t, 1.0, testutil.ToFloat64(c.DatasetLoads.WithLabelValues("prize", "success")))
		assert.Equal(t, 1.0, testutil.ToFloat64(c.DatasetLoads.WithLabelValues("laureate", "error")))
		assert.Equal(t, 1.0, testutil.ToFloat64(c.Aggregations.WithLabelValues("success")))
		assert.Equal(t, 12.0, testutil.ToFloat64(c.DatasetRecords.WithLabelValues("laureate")))
	})

	t.Run("Success: nil collector is a no-op", func(t *testing.T) {
		var c *Collector
		assert.NotPanics(t, func() {
			c.ObserveLoad("prize", nil)
			c.ObserveAggregation(nil)
			c.SetRecords("prize", 1)
		})
		assert.Nil(t, c.Registry())
	})

	t.Run("Success: middleware and handler", func(t *testing.T) {
		c := NewCollector("nobel")
		app := fiber.New()
		app.Use(c.Middleware())
		app.Get("/ping", func(ctx *fiber.Ctx) error { return ctx.SendString("pong") })
		app.Get("/metrics", c.Handler())

		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/ping", "200")))

		resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "nobel_http_requests_total")
	})
}
