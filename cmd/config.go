package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	defaultAppName     = "ethprice"
	defaultHTTPAddr    = ":8080"
	defaultHTTPTimeout = 60 * time.Second
)

type Config struct {
	AppName          string
	LogLevel         string
	HTTPAddr         string
	HTTPTimeout      time.Duration
	TelegramApiToken string
	TelegramChatID   int64
	LokiAddr         string
}

// loadConfig reads confFileName into the environment when it exists, then
// builds the Config from the environment.
func (a *App) loadConfig(confFileName string) error {
	var cfg Config
	var err error

	if err := godotenv.Load(confFileName); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "load %s", confFileName)
	}

	cfg.AppName = cfg.get("APP_NAME", defaultAppName)
	cfg.LogLevel = cfg.get("LOG_LEVEL", "INFO")
	cfg.HTTPAddr = cfg.get("HTTP_ADDR", defaultHTTPAddr)
	cfg.TelegramApiToken = cfg.get("TELEGRAM_API_TOKEN", "")
	cfg.LokiAddr = cfg.get("LOKI_ADDR", "")

	if cfg.HTTPTimeout, err = time.ParseDuration(cfg.get("HTTP_TIMEOUT", defaultHTTPTimeout.String())); err != nil {
		return errors.Wrap(err, "HTTP_TIMEOUT")
	}

	if cfg.TelegramApiToken != "" {
		if cfg.TelegramChatID, err = strconv.ParseInt(cfg.get("TELEGRAM_CHAT_ID", ""), 10, 64); err != nil {
			return errors.Wrap(err, "TELEGRAM_CHAT_ID")
		}
	}

	a.Config = &cfg

	return nil
}

func (c *Config) get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
