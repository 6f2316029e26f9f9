package main

import (
	"ethprice/internal/ui"
	"ethprice/internal/usecasees/structs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/ic2hrmk/promtail"
	"github.com/sirupsen/logrus"

	"net/http"
)

type App struct {
	Config     *Config
	Logger     *logrus.Logger
	PromTail   promtail.Client
	HTTPClient *http.Client
	TGM        *tgbotapi.BotAPI
	Fiber      *fiber.App
	Loop       *ui.MainLoop
	Metrics    *structs.Metrics
}
