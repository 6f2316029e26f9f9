package usecasees

import (
	"context"
	"ethprice/internal/ui"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Screen is one load of the price label. It is created by screenUseCase.Load.
type Screen struct {
	ID uuid.UUID

	label  *ui.Label
	cancel context.CancelFunc
	closed int32
}

func (s *Screen) Label() *ui.Label {
	return s.label
}

// Wait blocks until the label is displayed or ctx is done.
func (s *Screen) Wait(ctx context.Context) error {
	select {
	case <-s.label.Displayed():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close tears the screen down. An in-flight fetch is cancelled and its
// result is never written to the label.
func (s *Screen) Close() {
	atomic.StoreInt32(&s.closed, 1)
	s.cancel()
}

func (s *Screen) isClosed() bool {
	return atomic.LoadInt32(&s.closed) == 1
}

type screenUseCase struct {
	priceUseCase *priceUseCase
	loop         *ui.MainLoop
	logger       *logrus.Logger
}

func NewScreenUseCase(
	priceUseCase *priceUseCase,
	loop *ui.MainLoop,
	logger *logrus.Logger,
) *screenUseCase {
	return &screenUseCase{
		priceUseCase: priceUseCase,
		loop:         loop,
		logger:       logger,
	}
}

// Load opens a screen on display and starts its single price fetch. The
// label is written only from the main loop. When ctx ends before the price
// arrives the label shows FallbackText; only Close leaves it in Loading.
func (u *screenUseCase) Load(ctx context.Context, display ui.Display) *Screen {
	ctx, cancel := context.WithCancel(ctx)

	s := &Screen{
		ID:     uuid.New(),
		label:  ui.NewLabel(display),
		cancel: cancel,
	}

	logger := u.logger.WithField("screen", s.ID.String())

	u.loop.Dispatch(func() {
		if err := s.label.Open(); err != nil {
			logger.Debug(err)
		}
	})

	go func() {
		quote, err := u.priceUseCase.Quote(ctx)
		if err != nil {
			logger.Debug(err)
		}

		if !u.loop.Dispatch(func() {
			defer s.cancel()

			if s.isClosed() {
				logger.Debug("screen closed before price arrived")
				return
			}

			if err := s.label.SetText(u.priceUseCase.Present(quote)); err != nil {
				logger.Debug(err)
			}
		}) {
			logger.Debug("main loop stopped before price arrived")
			s.cancel()
		}
	}()

	return s
}
