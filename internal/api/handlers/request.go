package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dvloznov/bank-middleware-mock/internal/statement"
	"github.com/shopspring/decimal"
)

// maxBodyBytes bounds the statement request body.
const maxBodyBytes = 1 << 20

// textField accepts a JSON string or number and keeps its text. Numbers are
// rendered in plain decimal notation, so 7.455601957e9 reads as "7455601957".
type textField string

func (f *textField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = textField(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("must be a string or number: %w", err)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return fmt.Errorf("number %s: %w", n, err)
	}
	*f = textField(d.String())
	return nil
}

type statementRequest struct {
	AccountNumber textField `json:"account_number"`
	FromDate      textField `json:"from_date"`
	ToDate        textField `json:"to_date"`
}

// decodeStatementRequest reads criteria from the JSON body, falling back to the
// query string for each field the body leaves empty. An empty body is allowed.
// Values are passed through untrimmed; account filtering is an exact match.
func decodeStatementRequest(r *http.Request) (statement.Request, error) {
	var body statementRequest

	if r.Body != nil {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			return statement.Request{}, fmt.Errorf("read body: %w", err)
		}
		if len(bytes.TrimSpace(data)) > 0 {
			if err := json.Unmarshal(data, &body); err != nil {
				return statement.Request{}, fmt.Errorf("decode body: %w", err)
			}
		}
	}

	query := r.URL.Query()
	return statement.Request{
		AccountNumber: firstNonEmpty(string(body.AccountNumber), query.Get("account_number")),
		FromDate:      firstNonEmpty(string(body.FromDate), query.Get("from_date")),
		ToDate:        firstNonEmpty(string(body.ToDate), query.Get("to_date")),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
