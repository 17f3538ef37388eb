// Package schedule turns IslamicAPI's Ramadan payload into a clean,
// guaranteed-shape list of fasting days.
package schedule

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/ramadan/internal/islamicapi"
	"github.com/Nixie-Tech-LLC/ramadan/internal/model"
)

// Upstream is the one call the fetcher makes per request.
type Upstream interface {
	Ramadan(ctx context.Context, lat, lon, apiKey string) (json.RawMessage, error)
}

type Fetcher struct {
	upstream Upstream
	apiKey   string
}

func NewFetcher(upstream Upstream, apiKey string) *Fetcher {
	return &Fetcher{upstream: upstream, apiKey: apiKey}
}

type envelope struct {
	Data struct {
		Fasting *[]json.RawMessage `json:"fasting"`
	} `json:"data"`
}

// Fetch returns the sahur/iftar schedule for lat/lon in upstream day order.
// lat and lon are passed through untouched.
func (f *Fetcher) Fetch(ctx context.Context, lat, lon string) ([]model.FastingDayClean, error) {
	if f.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	payload, err := f.upstream.Ramadan(ctx, lat, lon, f.apiKey)
	if err != nil {
		log.Warn().Err(err).Str("lat", lat).Str("lon", lon).Msg("IslamicAPI request failed")
		return nil, upstreamError(err)
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil || env.Data.Fasting == nil {
		log.Warn().Str("lat", lat).Str("lon", lon).Msg("IslamicAPI payload has no data.fasting")
		return nil, ErrUnexpectedShape
	}

	days, dropped := FilterDays(*env.Data.Fasting)
	for _, d := range dropped {
		log.Debug().Int("index", d.Index).Str("date", d.Date).Str("reason", d.Reason).Msg("dropped fasting day")
	}

	if len(days) == 0 {
		return nil, ErrNoFastingDays
	}
	return days, nil
}

func upstreamError(err error) *UpstreamError {
	var serr *islamicapi.StatusError
	if errors.As(err, &serr) {
		return &UpstreamError{Status: serr.StatusCode, Detail: serr.Body, Err: err}
	}
	return &UpstreamError{Err: err}
}
