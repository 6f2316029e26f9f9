package http

import (
	"context"
	"ethprice/internal/ui"
	"ethprice/internal/usecasees"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ScreenLoader interface {
	Load(ctx context.Context, display ui.Display) *usecasees.Screen
}

type Handler struct {
	fiber   *fiber.App
	screens ScreenLoader
	timeout time.Duration
	logger  *logrus.Logger
}

func NewHandler(f *fiber.App, s ScreenLoader, timeout time.Duration, l *logrus.Logger) *Handler {
	return &Handler{
		fiber:   f,
		screens: s,
		timeout: timeout,
		logger:  l,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	if err := c.JSON(body); err != nil {
		return err
	}

	return nil
}

type priceBody struct {
	State string `json:"state"`
	Text  string `json:"text"`
}

// displayGrace is how long Price keeps waiting after the fetch deadline for
// the fallback text to reach the label.
const displayGrace = 500 * time.Millisecond

// Price loads one screen and answers with its label once displayed.
func (h *Handler) Price(c *fiber.Ctx) error {
	fetchCtx, cancelFetch := context.WithTimeout(context.Background(), h.timeout)
	defer cancelFetch()

	waitCtx, cancelWait := context.WithTimeout(context.Background(), h.timeout+displayGrace)
	defer cancelWait()

	screen := h.screens.Load(fetchCtx, ui.DisplayFunc(func(string) error { return nil }))
	defer screen.Close()

	status := fiber.StatusOK
	if err := screen.Wait(waitCtx); err != nil {
		h.logger.
			WithField("screen", screen.ID.String()).
			WithError(err).
			Debug("price not displayed in time")
		status = fiber.StatusGatewayTimeout
	}

	label := screen.Label()

	return c.Status(status).JSON(priceBody{
		State: label.State().String(),
		Text:  label.Text(),
	})
}
