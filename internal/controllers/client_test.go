package controllers_test

import (
	"bytes"
	"context"
	"ethprice/internal/controllers"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientController(timeout time.Duration) *controllers.ClientController {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	return controllers.NewClientController(&http.Client{Timeout: timeout}, logger)
}

func TestClientController_Get(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			_, _ = w.Write([]byte(`{"USD":1800.5}`))
		}))
		defer srv.Close()

		u, err := url.Parse(srv.URL)
		require.NoError(t, err)

		body, err := newClientController(time.Second).Get(context.Background(), u)
		assert.NoError(t, err)
		assert.Equal(t, `{"USD":1800.5}`, string(body))
	})

	t.Run("bad status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"USD":1}`))
		}))
		defer srv.Close()

		u, err := url.Parse(srv.URL)
		require.NoError(t, err)

		body, err := newClientController(time.Second).Get(context.Background(), u)
		assert.Nil(t, body)
		assert.True(t, errors.Is(err, controllers.ErrBadStatus))
		assert.Contains(t, err.Error(), "statusCode 429")
	})

	t.Run("body too large", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"USD":1,"pad":"`))
			_, _ = w.Write(bytes.Repeat([]byte("x"), 2<<20))
			_, _ = w.Write([]byte(`"}`))
		}))
		defer srv.Close()

		u, err := url.Parse(srv.URL)
		require.NoError(t, err)

		body, err := newClientController(time.Second).Get(context.Background(), u)
		assert.Nil(t, body)
		assert.True(t, errors.Is(err, controllers.ErrBodyTooLarge))
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer srv.Close()
		defer close(release)

		u, err := url.Parse(srv.URL)
		require.NoError(t, err)

		_, err = newClientController(50*time.Millisecond).Get(context.Background(), u)
		assert.Error(t, err)
	})

	t.Run("canceled", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		u, err := url.Parse(srv.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = newClientController(time.Second).Get(ctx, u)
		assert.True(t, errors.Is(err, context.Canceled))
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		u, err := url.Parse(srv.URL)
		require.NoError(t, err)
		srv.Close()

		_, err = newClientController(time.Second).Get(context.Background(), u)
		assert.Error(t, err)
	})
}
