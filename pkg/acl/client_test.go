package acl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

type planPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestFetchJSONForwardsInboundBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 5, "name": "premium"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, logger.NewNoopLogger())
	ctx := security.WithBearerToken(context.Background(), "inbound.jwt.token")

	var plan planPayload
	ok := client.FetchJSON(ctx, "/api/v1/plans/id/5", &plan)
	require.True(t, ok)
	assert.Equal(t, "Bearer inbound.jwt.token", gotAuth)
	assert.Equal(t, int64(5), plan.ID)
	assert.Equal(t, "premium", plan.Name)
}

func TestFetchJSONWithoutCredentialProceedsUnauthenticated(t *testing.T) {
	var sawAuthHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuthHeader = r.Header["Authorization"]
		w.Write([]byte(`{"id": 1, "name": "basic"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, logger.NewNoopLogger())

	var plan planPayload
	ok := client.FetchJSON(context.Background(), "/api/v1/plans/id/1", &plan)
	require.True(t, ok)
	assert.False(t, sawAuthHeader)
}

func TestFetchJSONReportsAbsentOnNon2xx(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusUnauthorized, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client := NewClient(srv.URL, logger.NewNoopLogger())
		var plan planPayload
		assert.False(t, client.FetchJSON(context.Background(), "/api/v1/plans/id/1", &plan), "status %d", status)
		srv.Close()
	}
}

func TestFetchJSONReportsAbsentOnUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, logger.NewNoopLogger())
	var plan planPayload
	assert.False(t, client.FetchJSON(context.Background(), "/api/v1/plans/id/1", &plan))
}

func TestFetchJSONReportsAbsentOnUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, logger.NewNoopLogger())
	var plan planPayload
	assert.False(t, client.FetchJSON(context.Background(), "/api/v1/plans/id/1", &plan))
}
