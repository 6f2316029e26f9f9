package controllers

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientController struct {
	client *http.Client
	logger *logrus.Logger
}

func NewClientController(
	client *http.Client,
	logger *logrus.Logger,
) *ClientController {
	return &ClientController{
		client: client,
		logger: logger,
	}
}

// maxBodySize bounds what Get buffers; price responses are a few bytes.
const maxBodySize = 1 << 20

var (
	ErrBadStatus    = errors.New("unexpected status code")
	ErrBodyTooLarge = errors.New("response body too large")
)

// Get returns the body of a 2xx response to a GET on url.
func (c *ClientController) Get(ctx context.Context, url *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "new request")
	}

	req.Header.Add("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request")
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	out, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(err, "read body")
	}

	if len(out) > maxBodySize {
		return nil, errors.Wrapf(ErrBodyTooLarge, "more than %d bytes", maxBodySize)
	}

	if resp.StatusCode/100 != 2 {
		return nil, errors.Wrapf(ErrBadStatus, "statusCode %d; resp %s;", resp.StatusCode, out)
	}

	c.logger.WithFields(logrus.Fields{
		"url":    url.Redacted(),
		"status": resp.StatusCode,
		"bytes":  len(out),
	}).Debug("price api response")

	return out, nil
}
