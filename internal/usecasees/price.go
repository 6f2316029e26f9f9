package usecasees

import (
	"context"
	"ethprice/internal/controllers"
	"ethprice/internal/usecasees/structs"
	"ethprice/models"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PriceURL returns the value of 1 ETH in USD.
const PriceURL = "https://min-api.cryptocompare.com/data/price?fsym=ETH&tsyms=USD"

// FallbackText is shown whenever the price could not be fetched, parsed or formatted.
const FallbackText = "Failed"

type priceUseCase struct {
	clientController controllers.ClientCtrl

	metrics *structs.Metrics

	url string

	logger *logrus.Logger
}

func NewPriceUseCase(
	client controllers.ClientCtrl,
	url string,
	metrics *structs.Metrics,
	logger *logrus.Logger,
) *priceUseCase {
	return &priceUseCase{
		clientController: client,
		metrics:          metrics,
		url:              url,
		logger:           logger,
	}
}

// Quote fetches and parses a single price.
func (u *priceUseCase) Quote(ctx context.Context) (*models.PriceQuote, error) {
	priceURL, err := url.Parse(u.url)
	if err != nil {
		return nil, errors.Wrap(err, "parse price url")
	}

	body, err := u.clientController.Get(ctx, priceURL)
	if err != nil {
		return nil, errors.Wrap(err, "request price")
	}

	quote, err := ParseQuote(body)
	if err != nil {
		return nil, errors.Wrap(err, "parse price")
	}

	return quote, nil
}

// Present formats quote for display. A nil quote, or one that cannot be
// formatted, yields FallbackText.
func (u *priceUseCase) Present(quote *models.PriceQuote) string {
	if quote == nil {
		u.metrics.Inc(structs.MetricQuoteFailed)
		return FallbackText
	}

	text, err := FormatUSD(quote.Value)
	if err != nil {
		u.logger.WithField("method", "Present").Debug(err)
		u.metrics.Inc(structs.MetricQuoteFailed)
		return FallbackText
	}

	u.metrics.Inc(structs.MetricQuoteDisplayed)

	return text
}
