package endpoints

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/ramadan/internal/broadcast"
	"github.com/Nixie-Tech-LLC/ramadan/internal/http/api"
	"github.com/Nixie-Tech-LLC/ramadan/internal/http/api/ramadan/packets"
	"github.com/Nixie-Tech-LLC/ramadan/internal/model"
	"github.com/Nixie-Tech-LLC/ramadan/internal/schedule"
)

type ScheduleFetcher interface {
	Fetch(ctx context.Context, lat, lon string) ([]model.FastingDayClean, error)
}

type RamadanController struct {
	fetcher   ScheduleFetcher
	publisher broadcast.Publisher
}

func NewRamadanController(fetcher ScheduleFetcher, publisher broadcast.Publisher) *RamadanController {
	if publisher == nil {
		publisher = broadcast.Nop{}
	}
	return &RamadanController{fetcher: fetcher, publisher: publisher}
}

// fetchedKey holds the query and days of a successful /ramadan call until
// the response has been written.
const fetchedKey = "ramadan.fetched"

type fetched struct {
	query packets.RamadanQuery
	days  []model.FastingDayClean
}

func RamadanModule(fetcher ScheduleFetcher, publisher broadcast.Publisher) api.Module {
	ctl := NewRamadanController(fetcher, publisher)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/ramadan", ctl.publishAfterResponse, api.ResolveEndpoint(ctl.getRamadan))
	})
}

// GET /ramadan?lat=..&lon=..
func (r *RamadanController) getRamadan(ctx *gin.Context) (any, *api.APIError) {
	query, ok := bindRamadanQuery(ctx)
	if !ok {
		return nil, &api.APIError{Code: http.StatusUnprocessableEntity, Message: "lat and lon query parameters are required"}
	}

	days, err := r.fetcher.Fetch(ctx.Request.Context(), query.Lat, query.Lon)
	if err != nil {
		return nil, scheduleError(err)
	}

	ctx.Set(fetchedKey, fetched{query: query, days: days})
	return days, nil
}

// bindRamadanQuery only requires lat and lon to be present. Empty values are
// forwarded to IslamicAPI as-is.
func bindRamadanQuery(ctx *gin.Context) (packets.RamadanQuery, bool) {
	lat, hasLat := ctx.GetQuery("lat")
	lon, hasLon := ctx.GetQuery("lon")
	if !hasLat || !hasLon {
		return packets.RamadanQuery{}, false
	}
	return packets.RamadanQuery{Lat: lat, Lon: lon}, true
}

// publishAfterResponse broadcasts the schedule once the handler chain has
// written it to the client.
func (r *RamadanController) publishAfterResponse(ctx *gin.Context) {
	ctx.Next()

	v, ok := ctx.Get(fetchedKey)
	if !ok {
		return
	}
	f := v.(fetched)
	r.publisher.PublishSchedule(f.query.Lat, f.query.Lon, f.days)
}

// scheduleError maps fetcher failures onto the status codes and messages
// the browser client expects.
func scheduleError(err error) *api.APIError {
	var uerr *schedule.UpstreamError

	switch {
	case errors.Is(err, schedule.ErrMissingAPIKey):
		return &api.APIError{Code: http.StatusInternalServerError, Message: "Missing ISLAMIC_API_KEY. Add it to .env"}
	case errors.Is(err, schedule.ErrUnexpectedShape):
		return &api.APIError{Code: http.StatusBadGateway, Message: "Unexpected IslamicAPI response shape (missing data.fasting)."}
	case errors.Is(err, schedule.ErrNoFastingDays):
		return &api.APIError{Code: http.StatusBadGateway, Message: "No fasting days returned from IslamicAPI."}
	case errors.As(err, &uerr) && uerr.Status != 0:
		msg := fmt.Sprintf("Upstream IslamicAPI error: HTTP %d", uerr.Status)
		if uerr.Detail != "" {
			msg += " - " + uerr.Detail
		}
		return &api.APIError{Code: http.StatusBadGateway, Message: msg}
	case uerr != nil:
		return &api.APIError{Code: http.StatusBadGateway, Message: fmt.Sprintf("Failed to fetch Ramadan data: %v", uerr.Err)}
	default:
		return &api.APIError{Code: http.StatusBadGateway, Message: fmt.Sprintf("Failed to fetch Ramadan data: %v", err)}
	}
}
