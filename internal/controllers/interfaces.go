package controllers

import (
	"context"
	"net/url"

	tgmBotAPI "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//go:generate mockery --case=snake --name=ClientCtrl
//go:generate mockery --case=snake --name=TgmCtrl

type ClientCtrl interface {
	Get(ctx context.Context, url *url.URL) ([]byte, error)
}

type TgmCtrl interface {
	Send(text string) (int, error)
	CheckChatID(chatID int64) bool
	Update(msgID int, text string) error
	GetUpdates() tgmBotAPI.UpdatesChannel
	StopUpdates()
}
