package islamicapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRamadan_SendsQuery(t *testing.T) {
	var got url.Values
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/ramadan/", r.URL.Path)
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"data":{"fasting":[]}}`))
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL+"/api/v1/ramadan/", time.Second).Ramadan(context.Background(), "40.7128", "-74.0060", "s3cret")

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":{"fasting":[]}}`, string(body))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "40.7128", got.Get("lat"))
	assert.Equal(t, "-74.0060", got.Get("lon"))
	assert.Equal(t, "s3cret", got.Get("api_key"))
}

func TestRamadan_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "  invalid api key  ", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Ramadan(context.Background(), "1", "2", "bad")

	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusUnauthorized, serr.StatusCode)
	assert.Equal(t, "invalid api key", serr.Body)
}

func TestRamadan_NotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Ramadan(context.Background(), "1", "2", "k")
	assert.ErrorIs(t, err, ErrNotJSON)
}

func TestRamadan_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := NewClient(base, time.Second).Ramadan(context.Background(), "1", "2", "topsecret")

	require.Error(t, err)
	var uerr *url.Error
	assert.True(t, errors.As(err, &uerr))
	assert.False(t, strings.Contains(err.Error(), "topsecret"), err.Error())
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
}
