package main

import (
	"context"
	api "ethprice/internal/api/http"
	"ethprice/internal/controllers"
	"ethprice/internal/ui"
	"ethprice/internal/usecasees"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
)

func main() {
	var app App
	var confFileName string
	var serve bool

	flag.StringVar(&confFileName, "config", ".env", "path to the env file")
	flag.BoolVar(&serve, "serve", false, "serve the price over http and telegram instead of printing it once")
	flag.Parse()

	if err := app.loadConfig(confFileName); err != nil {
		panic(err)
	}

	app.initLogger()

	if err := app.initLoki(); err != nil {
		app.Logger.WithError(err).Error("loki disabled")
	}
	defer app.closeLoki()

	app.initHTTPClient()
	app.InitMetrics()
	app.Loop = ui.NewMainLoop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Logger,
	)

	priceUseCase := usecasees.NewPriceUseCase(
		clientController,
		usecasees.PriceURL,
		app.Metrics,
		app.Logger,
	)

	screenUseCase := usecasees.NewScreenUseCase(
		priceUseCase,
		app.Loop,
		app.Logger,
	)

	if !serve {
		screen := screenUseCase.Load(ctx, ui.NewTerminalDisplay(os.Stdout))

		loopCtx, cancel := context.WithCancel(ctx)
		go func() {
			defer cancel()
			_ = screen.Wait(ctx)
		}()

		// the main goroutine owns the display
		app.Loop.Run(loopCtx)
		screen.Close()

		return
	}

	if err := app.initTgBot(); err != nil {
		panic(err)
	}

	if app.TGM != nil {
		tgmUseCase := usecasees.NewTgmUseCase(
			screenUseCase,
			controllers.NewTgmController(app.TGM, app.Config.TelegramChatID),
			app.Logger,
		)
		go tgmUseCase.CommandProcessor(ctx)
	}

	app.Fiber = fiber.New(fiber.Config{DisableStartupMessage: true})
	api.NewMiddleware(app.Fiber, app.Config.AppName).UseMetrics()
	api.RegisterHTTPEndpoints(app.Fiber, screenUseCase, app.Config.HTTPTimeout, app.Logger)

	go func() {
		app.Logger.WithField("addr", app.Config.HTTPAddr).Info("serving")
		if err := app.Fiber.Listen(app.Config.HTTPAddr); err != nil {
			app.Logger.WithError(err).Error("http server stopped")
			stop()
		}
	}()

	go func() {
		<-ctx.Done()
		if err := app.Fiber.Shutdown(); err != nil {
			app.Logger.WithError(err).Error("http shutdown")
		}
	}()

	app.Loop.Run(ctx)
}
