// Package broadcast pushes freshly fetched Ramadan timetables to signage
// screens. It never influences the HTTP response of the request that
// produced the timetable.
package broadcast

import (
	"strings"
	"time"

	"github.com/Nixie-Tech-LLC/ramadan/internal/model"
)

type Publisher interface {
	PublishSchedule(lat, lon string, days []model.FastingDayClean)
	Close()
}

// ScheduleMessage is the payload screens receive.
type ScheduleMessage struct {
	Lat       string                  `json:"lat"`
	Lon       string                  `json:"lon"`
	FetchedAt string                  `json:"fetched_at"`
	Days      []model.FastingDayClean `json:"days"`
}

func newScheduleMessage(lat, lon string, days []model.FastingDayClean) ScheduleMessage {
	return ScheduleMessage{
		Lat:       lat,
		Lon:       lon,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
		Days:      days,
	}
}

var topicReplacer = strings.NewReplacer("+", "_", "#", "_", "/", "_", " ", "")

// Topic is prefix/<lat>,<lon> with MQTT wildcard and level characters
// removed from the coordinates.
func Topic(prefix, lat, lon string) string {
	return strings.TrimSuffix(prefix, "/") + "/" + topicReplacer.Replace(lat) + "," + topicReplacer.Replace(lon)
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) PublishSchedule(string, string, []model.FastingDayClean) {}
func (Nop) Close() {}
