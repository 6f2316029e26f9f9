package usecasees

import (
	"context"
	"ethprice/internal/controllers"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	commandPrice = "price"
	commandPing  = "ping"
)

var ErrDisplayBusy = errors.New("display queue full")

// a label shows at most its loading text and its final text
const tgmDisplayQueue = 4

// tgmDisplay shows a label as one telegram message, edited in place after the
// first delivery. Show only queues the text; run talks to telegram so the main
// loop never waits on the network.
type tgmDisplay struct {
	tgmController controllers.TgmCtrl
	texts         chan string
	logger        *logrus.Entry

	// owned by run
	msgID int
	sent  bool
}

func newTgmDisplay(tgmController controllers.TgmCtrl, logger *logrus.Entry) *tgmDisplay {
	return &tgmDisplay{
		tgmController: tgmController,
		texts:         make(chan string, tgmDisplayQueue),
		logger:        logger,
	}
}

func (d *tgmDisplay) Show(text string) error {
	select {
	case d.texts <- text:
		return nil
	default:
		return ErrDisplayBusy
	}
}

// run delivers queued texts in order until stop is closed, then flushes what is left.
func (d *tgmDisplay) run(stop <-chan struct{}) {
	for {
		select {
		case text := <-d.texts:
			d.deliver(text)
		case <-stop:
			for {
				select {
				case text := <-d.texts:
					d.deliver(text)
				default:
					return
				}
			}
		}
	}
}

func (d *tgmDisplay) deliver(text string) {
	if d.sent {
		if err := d.tgmController.Update(d.msgID, text); err != nil {
			d.logger.WithField("method", "Update").Debug(err)
		}
		return
	}

	msgID, err := d.tgmController.Send(text)
	if err != nil {
		d.logger.WithField("method", "Send").Debug(err)
		return
	}

	d.msgID = msgID
	d.sent = true
}

type tgmUseCase struct {
	screenUseCase *screenUseCase
	tgmController controllers.TgmCtrl
	logger        *logrus.Logger
}

func NewTgmUseCase(
	screenUseCase *screenUseCase,
	tgmController controllers.TgmCtrl,
	logger *logrus.Logger,
) *tgmUseCase {
	return &tgmUseCase{
		screenUseCase: screenUseCase,
		tgmController: tgmController,
		logger:        logger,
	}
}

func (u *tgmUseCase) CommandProcessor(ctx context.Context) {
	updates := u.tgmController.GetUpdates()
	defer u.tgmController.StopUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			u.process(ctx, update)
		}
	}
}

func (u *tgmUseCase) process(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Chat == nil {
		return
	}

	if !u.tgmController.CheckChatID(update.Message.Chat.ID) {
		u.logger.WithField("chat", update.Message.Chat.ID).Debug("ignoring foreign chat")
		return
	}

	switch update.Message.Command() {
	case commandPrice:
		u.priceProc(ctx)
	case commandPing:
		u.pingProc()
	}
}

func (u *tgmUseCase) priceProc(ctx context.Context) {
	display := newTgmDisplay(u.tgmController, logrus.NewEntry(u.logger))
	screen := u.screenUseCase.Load(ctx, display)
	display.logger = display.logger.WithField("screen", screen.ID.String())

	stop := make(chan struct{})
	go display.run(stop)

	go func() {
		defer close(stop)
		defer screen.Close()

		if err := screen.Wait(ctx); err != nil {
			u.logger.WithField("screen", screen.ID.String()).Debug(err)
		}
	}()
}

func (u *tgmUseCase) pingProc() {
	if _, err := u.tgmController.Send(
		fmt.Sprintf(
			"PONG [ %s ]",
			time.Now().UTC().Format(time.RFC822),
		)); err != nil {
		u.logger.WithField("method", "pingProc").Debug(err)
	}
}
