package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (a *App) initTgBot() error {
	if a.Config.TelegramApiToken == "" {
		return nil
	}

	bot, err := tgbotapi.NewBotAPIWithClient(a.Config.TelegramApiToken, tgbotapi.APIEndpoint, a.HTTPClient)
	if err != nil {
		return err
	}
	bot.Debug = false

	a.TGM = bot

	return nil
}
