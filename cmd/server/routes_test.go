package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nixie-Tech-LLC/ramadan/internal/broadcast"
	"github.com/Nixie-Tech-LLC/ramadan/internal/config"
	"github.com/Nixie-Tech-LLC/ramadan/internal/model"
)

type staticFetcher []model.FastingDayClean

func (s staticFetcher) Fetch(context.Context, string, string) ([]model.FastingDayClean, error) {
	return s, nil
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, staticFetcher{{Date: "2025-03-01", Sahur: "05:42", Iftar: "17:48"}}, broadcast.Nop{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ramadan?lat=1&lon=2", nil)
	req.Header.Set("Origin", "http://127.0.0.1:5173")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "http://127.0.0.1:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.JSONEq(t,
		`[{"date":"2025-03-01","sahur":"05:42","iftar":"17:48","hijri_readable":null,"day":null}]`,
		w.Body.String())
}

func TestInitPublisher_NoBroker(t *testing.T) {
	p := initPublisher(&config.Config{})
	assert.IsType(t, broadcast.Nop{}, p)
}
