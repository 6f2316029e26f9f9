package usecasees

import (
	"math"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "$"

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders value the way an en-US currency formatter does:
// "$1,800.50", "-$5.00". Cents are rounded half to even.
func FormatUSD(value float64) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", errors.Errorf("cannot format %v as currency", value)
	}

	amount := decimal.NewFromFloat(value).RoundBank(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	cents, _ := amount.Float64()

	return sign + currencySymbol + usPrinter.Sprintf("%.2f", cents), nil
}
