package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/satellitegroup/printshop/internal/logging"
	"github.com/satellitegroup/printshop/internal/mykafka"
)

// publish fires a domain event; failures are logged and swallowed so
// event plumbing never breaks a request.
func publish(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka publish failed", "topic", topic, "error", err)
	}
}
