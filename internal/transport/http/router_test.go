package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eutestdata/internal/fixtures"
	fixturesHandler "eutestdata/internal/fixtures/handler"
	"eutestdata/internal/personalid"
	"eutestdata/internal/platform/metrics"
	"eutestdata/pkg/platform/middleware/requestid"
	"eutestdata/pkg/testutil"
)

func newTestRouter(t *testing.T, withMetrics bool) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var m *metrics.Metrics
	if withMetrics {
		m = metrics.New(prometheus.NewRegistry())
	}
	svc := fixtures.New(personalid.NewRegistry(), 20, logger, nil)
	return NewRouter(logger, m, fixturesHandler.New(svc, logger))
}

func TestHealth(t *testing.T) {
	rr := testutil.Do(newTestRouter(t, false), testutil.NewJSONRequest(t, http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(requestid.Header))
}

func TestUnknownRoute(t *testing.T) {
	rr := testutil.Do(newTestRouter(t, false), testutil.NewJSONRequest(t, http.MethodGet, "/v2/nothing", nil))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestMethodNotAllowed(t *testing.T) {
	rr := testutil.Do(newTestRouter(t, false), testutil.NewJSONRequest(t, http.MethodGet, "/v1/iban/generate", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, true)
	testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/health", nil))

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `route="/health"`)

	rr = testutil.Do(newTestRouter(t, false), testutil.NewJSONRequest(t, http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestIBANEndToEnd(t *testing.T) {
	router := newTestRouter(t, false)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/iban/generate",
		map[string]any{"country": "FR", "count": 3, "spaces": true, "seed": 99}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	batch := testutil.DecodeJSON[fixturesHandler.IBANBatchResponse](t, rr)
	require.Len(t, batch.IBANs, 3)

	for _, row := range batch.IBANs {
		assert.True(t, strings.HasPrefix(row.IBAN, "FR"))
		assert.Contains(t, row.IBAN, " ")

		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/iban/validate",
			fixturesHandler.ValidateIBANRequest{IBAN: row.IBAN}))
		check := testutil.DecodeJSON[fixturesHandler.IBANCheckResponse](t, rr)
		assert.True(t, check.Valid)
		assert.Equal(t, row.Electronic, check.IBAN)
	}
}

func TestPersonalIDEndToEnd(t *testing.T) {
	router := newTestRouter(t, false)

	rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/personal-ids/generate",
		map[string]any{"country": "FI", "count": 5, "gender": "male", "year": 2001, "seed": 1}))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	batch := testutil.DecodeJSON[fixturesHandler.IDBatchResponse](t, rr)
	require.Len(t, batch.IDs, 5)

	for _, id := range batch.IDs {
		rr := testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/personal-ids/parse",
			fixturesHandler.ParseIDRequest{Country: "FI", Code: id.Code}))
		parsed := testutil.DecodeJSON[fixturesHandler.ParsedIDResponse](t, rr)
		assert.Equal(t, id, parsed)
		assert.Equal(t, "Male", parsed.Gender)
		assert.True(t, strings.HasPrefix(parsed.DOB, "2001-"))
	}

	rr = testutil.Do(router, testutil.NewJSONRequest(t, http.MethodPost, "/v1/personal-ids/parse",
		fixturesHandler.ParseIDRequest{Country: "FI", Code: "not-a-code"}))
	testutil.AssertStatusAndError(t, rr, http.StatusUnprocessableEntity, "unprocessable")
}
