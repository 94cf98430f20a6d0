package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenmoor/taxbridge/internal/domain"
	"github.com/ravenmoor/taxbridge/internal/router"
	"github.com/ravenmoor/taxbridge/internal/taxes"
)

func apiRouter(provider *taxes.MockProvider) *router.Router {
	r := router.New()
	RegisterAPIRoutes(r, APIDeps{Provider: provider})
	return r
}

func TestHealthz(t *testing.T) {
	r := apiRouter(&taxes.MockProvider{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "ok", response["status"])
}

func TestReadyz(t *testing.T) {
	t.Run("provider reachable", func(t *testing.T) {
		r := apiRouter(&taxes.MockProvider{})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var response map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "ready", response["status"])
	})

	t.Run("provider unreachable", func(t *testing.T) {
		r := apiRouter(&taxes.MockProvider{
			PingFunc: func(ctx context.Context) error {
				return taxes.NewProviderError(assert.AnError, "AvaTax request failed")
			},
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestUnknownRouteReturnsJSONEnvelope(t *testing.T) {
	r := apiRouter(&taxes.MockProvider{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var response struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, domain.ENOTFOUND, response.Error.Code)
}
