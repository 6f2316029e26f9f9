package controllers

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// long poll seconds; stays below the default HTTP_TIMEOUT of the shared client
const updatesTimeout = 30

type TgmController struct {
	tgmBot *tgbotapi.BotAPI
	chatID int64
}

func NewTgmController(
	tgmBot *tgbotapi.BotAPI,
	chatID int64,
) *TgmController {
	return &TgmController{
		tgmBot: tgmBot,
		chatID: chatID,
	}
}

// Send posts text to the configured chat and returns the new message id.
func (c *TgmController) Send(text string) (int, error) {
	msg := tgbotapi.NewMessage(c.chatID, text)

	out, err := c.tgmBot.Send(msg)
	if err != nil {
		return 0, err
	}

	return out.MessageID, nil
}

func (c *TgmController) Update(msgID int, text string) error {
	msg := tgbotapi.EditMessageTextConfig{
		BaseEdit: tgbotapi.BaseEdit{
			ChatID:    c.chatID,
			MessageID: msgID,
		},
		Text: text,
	}

	if _, err := c.tgmBot.Send(msg); err != nil {
		return err
	}

	return nil
}

func (c *TgmController) CheckChatID(chatID int64) bool {
	return c.chatID == chatID
}

func (c *TgmController) GetUpdates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = updatesTimeout

	return c.tgmBot.GetUpdatesChan(u)
}

func (c *TgmController) StopUpdates() {
	c.tgmBot.StopReceivingUpdates()
}
