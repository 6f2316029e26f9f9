package usecasees

import (
	"bytes"
	"encoding/json"
	"ethprice/models"

	"github.com/pkg/errors"
)

const usdField = "USD"

var (
	ErrNotObject    = errors.New("body is not a json object")
	ErrMissingField = errors.New("field not found")
	ErrWrongType    = errors.New("field is not a number")
	ErrNegative     = errors.New("price is negative")
)

// ParseQuote reads the numeric USD field of a json object. Other fields are ignored.
func ParseQuote(body []byte) (*models.PriceQuote, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errors.Wrapf(ErrNotObject, "got %s", typeErr.Value)
		}

		return nil, errors.Wrap(err, "decode body")
	}

	// literal null
	if fields == nil {
		return nil, ErrNotObject
	}

	raw, ok := fields[usdField]
	if !ok {
		return nil, errors.Wrap(ErrMissingField, usdField)
	}

	var value interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&value); err != nil {
		return nil, errors.Wrap(err, "decode field")
	}

	number, ok := value.(json.Number)
	if !ok {
		return nil, errors.Wrapf(ErrWrongType, "%s is %T", usdField, value)
	}

	price, err := number.Float64()
	if err != nil {
		return nil, errors.Wrapf(ErrWrongType, "%s: %v", usdField, err)
	}

	if price < 0 {
		return nil, errors.Wrapf(ErrNegative, "%s: %v", usdField, price)
	}

	return &models.PriceQuote{Value: price}, nil
}
