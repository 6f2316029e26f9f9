package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func RegisterHTTPEndpoints(f *fiber.App, s ScreenLoader, timeout time.Duration, l *logrus.Logger) {
	h := NewHandler(f, s, timeout, l)
	router := f.Group("api")
	router.Get("/healthcheck", h.HealthCheck)
	router.Get("/price", h.Price)
}
