package enhance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopEnhancerReturnsInput(t *testing.T) {
	out, err := NewNoopEnhancer().Enhance(context.Background(), "show de rock")
	require.NoError(t, err)
	assert.Equal(t, "show de rock", out)
}

func TestHTTPEnhancerRewritesText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req enhanceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Prompt, "show de rock")

		json.NewEncoder(w).Encode(enhanceResponse{Text: "  Prestação de serviços de produção musical  "})
	}))
	defer srv.Close()

	e := NewHTTPEnhancer(Config{Endpoint: srv.URL, APIKey: "secret"})
	out, err := e.Enhance(context.Background(), "show de rock")
	require.NoError(t, err)
	assert.Equal(t, "Prestação de serviços de produção musical", out)
}

func TestHTTPEnhancerEmptyResultIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(enhanceResponse{Text: "   "})
	}))
	defer srv.Close()

	_, err := NewHTTPEnhancer(Config{Endpoint: srv.URL}).Enhance(context.Background(), "texto")
	assert.Error(t, err)
}

func TestHTTPEnhancerServiceFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTTPEnhancer(Config{Endpoint: srv.URL}).Enhance(context.Background(), "texto")
	assert.Error(t, err)
}
