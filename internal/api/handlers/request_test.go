package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dvloznov/bank-middleware-mock/internal/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatementRequest(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		body  string
		want  statement.Request
		isErr bool
	}{
		{
			name: "empty body",
			url:  "/",
			want: statement.Request{},
		},
		{
			name: "string account in body",
			url:  "/",
			body: `{"account_number":"7455601957","from_date":"10032024","to_date":"12032024"}`,
			want: statement.Request{AccountNumber: "7455601957", FromDate: "10032024", ToDate: "12032024"},
		},
		{
			name: "numeric account in body",
			url:  "/",
			body: `{"account_number":7455601957}`,
			want: statement.Request{AccountNumber: "7455601957"},
		},
		{
			name: "exponent account",
			url:  "/",
			body: `{"account_number":7.455601957e9}`,
			want: statement.Request{AccountNumber: "7455601957"},
		},
		{
			name: "padded account kept as sent",
			url:  "/",
			body: `{"account_number":" 7455601957 "}`,
			want: statement.Request{AccountNumber: " 7455601957 "},
		},
		{
			name: "numeric dates",
			url:  "/",
			body: `{"from_date":10032024,"to_date":12032024}`,
			want: statement.Request{FromDate: "10032024", ToDate: "12032024"},
		},
		{
			name: "null account",
			url:  "/",
			body: `{"account_number":null}`,
			want: statement.Request{},
		},
		{
			name: "query fallback",
			url:  "/?account_number=30001234567&from_date=11032024",
			body: `{"to_date":"13032024"}`,
			want: statement.Request{AccountNumber: "30001234567", FromDate: "11032024", ToDate: "13032024"},
		},
		{
			name: "body wins over query",
			url:  "/?account_number=1",
			body: `{"account_number":"2"}`,
			want: statement.Request{AccountNumber: "2"},
		},
		{
			name:  "invalid json",
			url:   "/",
			body:  `{"account_number":`,
			isErr: true,
		},
		{
			name:  "boolean account",
			url:   "/",
			body:  `{"account_number":true}`,
			isErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body))

			got, err := decodeStatementRequest(req)
			if tt.isErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
