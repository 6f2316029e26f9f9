package usecasees

import (
	"bytes"
	"context"
	"ethprice/internal/controllers"
	"ethprice/internal/ui"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	return logger
}

// syncBuffer is written from the main loop and read from the test goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

type screenFixture struct {
	screens *screenUseCase
	loop    *ui.MainLoop
	ctx     context.Context
}

// newScreenFixture serves handler as the price api and runs a main loop for the test.
func newScreenFixture(t *testing.T, handler http.HandlerFunc) *screenFixture {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := newTestLogger()
	client := controllers.NewClientController(&http.Client{Timeout: time.Second}, logger)
	price := NewPriceUseCase(client, srv.URL, nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	loop := ui.NewMainLoop()
	go loop.Run(ctx)

	return &screenFixture{
		screens: NewScreenUseCase(price, loop, logger),
		loop:    loop,
		ctx:     ctx,
	}
}

func (f *screenFixture) display(t *testing.T, out *syncBuffer) *Screen {
	t.Helper()

	screen := f.screens.Load(f.ctx, ui.NewTerminalDisplay(out))

	ctx, cancel := context.WithTimeout(f.ctx, 3*time.Second)
	defer cancel()
	require.NoError(t, screen.Wait(ctx))

	return screen
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
