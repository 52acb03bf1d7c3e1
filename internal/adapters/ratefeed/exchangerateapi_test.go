package ratefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/instant_transfer/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchRates_Success(t *testing.T) {
	// A rate with more precision than float64 can hold; it must survive intact.
	server := newTestServer(t, http.StatusOK, `{
		"result": "success",
		"base_code": "USD",
		"conversion_rates": {
			"EUR": 0.12345678901234567890123,
			"JPY": 150,
			"usd": 1
		}
	}`)

	client := NewClient(server.URL, "test-key", 5*time.Second)
	rates, err := client.FetchRates(context.Background(), "usd")

	require.NoError(t, err)
	require.Len(t, rates, 3)
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.12345678901234567890123")),
		"EUR rate mangled: %s", rates["EUR"])
	assert.True(t, rates["JPY"].Equal(decimal.NewFromInt(150)))
	// Codes are normalized to upper case.
	assert.True(t, rates["USD"].Equal(decimal.NewFromInt(1)))
}

func TestFetchRates_RequestPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"result": "success", "conversion_rates": {}}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL+"/", "test-key", 5*time.Second)
	_, err := client.FetchRates(context.Background(), "eur")

	require.NoError(t, err)
	assert.Equal(t, "/test-key/latest/EUR", gotPath)
}

func TestFetchRates_ServerError(t *testing.T) {
	server := newTestServer(t, http.StatusInternalServerError, "boom")

	client := NewClient(server.URL, "test-key", 5*time.Second)
	_, err := client.FetchRates(context.Background(), "USD")

	assert.ErrorIs(t, err, apperrors.ErrRateFeedUnavailable)
}

func TestFetchRates_MalformedBody(t *testing.T) {
	server := newTestServer(t, http.StatusOK, "<html>not json</html>")

	client := NewClient(server.URL, "test-key", 5*time.Second)
	_, err := client.FetchRates(context.Background(), "USD")

	assert.ErrorIs(t, err, apperrors.ErrRateFeedUnavailable)
}

func TestFetchRates_UnsupportedCode(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"result": "error", "error-type": "unsupported-code"}`)

	client := NewClient(server.URL, "test-key", 5*time.Second)
	_, err := client.FetchRates(context.Background(), "XXX")

	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestFetchRates_ProviderError(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{"result": "error", "error-type": "invalid-key"}`)

	client := NewClient(server.URL, "bad-key", 5*time.Second)
	_, err := client.FetchRates(context.Background(), "USD")

	assert.ErrorIs(t, err, apperrors.ErrRateFeedUnavailable)
}

func TestFetchRate_PairLookup(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{
		"result": "success",
		"base_code": "EUR",
		"conversion_rates": {"CHF": 1.05}
	}`)

	client := NewClient(server.URL, "test-key", 5*time.Second)

	rate, err := client.FetchRate(context.Background(), "EUR", "chf")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("1.05")))

	_, err = client.FetchRate(context.Background(), "EUR", "XYZ")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestFetchRates_TransportFailure(t *testing.T) {
	server := newTestServer(t, http.StatusOK, "{}")
	url := server.URL
	server.Close()

	client := NewClient(url, "test-key", time.Second)
	_, err := client.FetchRates(context.Background(), "USD")

	assert.ErrorIs(t, err, apperrors.ErrRateFeedUnavailable)
}
