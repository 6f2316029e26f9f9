package http

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
)

type Middleware struct {
	appName string
	fiber   *fiber.App
}

func NewMiddleware(fiber *fiber.App, appName string) *Middleware {
	return &Middleware{
		appName: appName,
		fiber:   fiber,
	}
}

// UseMetrics serves /metrics and counts every request that follows it.
func (m *Middleware) UseMetrics() {
	prometheus := fiberprometheus.New(m.appName)
	prometheus.RegisterAt(m.fiber, "/metrics")
	m.fiber.Use(prometheus.Middleware)
}
