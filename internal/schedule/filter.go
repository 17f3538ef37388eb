package schedule

import (
	"encoding/json"

	"github.com/Nixie-Tech-LLC/ramadan/internal/model"
)

// Discard records why an upstream day was left out of the result.
type Discard struct {
	Index  int
	Date   string
	Reason string
}

const (
	ReasonMalformed   = "malformed record"
	ReasonMissingDate = "missing date"
	ReasonMissingTime = "missing sahur or iftar"
	ReasonBadSahur    = "unparseable sahur"
	ReasonBadIftar    = "unparseable iftar"
)

// FilterDays maps upstream day records onto clean ones, keeping upstream
// order. Records without a date, without both times, or with a time that
// NormalizeTime rejects are skipped and reported in the second return value.
func FilterDays(days []json.RawMessage) ([]model.FastingDayClean, []Discard) {
	kept := make([]model.FastingDayClean, 0, len(days))
	var dropped []Discard

	for i, raw := range days {
		var day model.FastingDayRaw
		if err := json.Unmarshal(raw, &day); err != nil {
			dropped = append(dropped, Discard{Index: i, Reason: ReasonMalformed})
			continue
		}
		clean, reason := cleanDay(day)
		if reason != "" {
			dropped = append(dropped, Discard{Index: i, Date: day.Date, Reason: reason})
			continue
		}
		kept = append(kept, clean)
	}

	return kept, dropped
}

func cleanDay(day model.FastingDayRaw) (model.FastingDayClean, string) {
	if day.Date == "" {
		return model.FastingDayClean{}, ReasonMissingDate
	}
	if day.Time == nil || day.Time.Sahur == "" || day.Time.Iftar == "" {
		return model.FastingDayClean{}, ReasonMissingTime
	}

	sahur, err := NormalizeTime(day.Time.Sahur)
	if err != nil {
		return model.FastingDayClean{}, ReasonBadSahur
	}
	iftar, err := NormalizeTime(day.Time.Iftar)
	if err != nil {
		return model.FastingDayClean{}, ReasonBadIftar
	}

	return model.FastingDayClean{
		Date:          day.Date,
		Sahur:         sahur,
		Iftar:         iftar,
		HijriReadable: day.HijriReadable,
		Day:           day.Day,
	}, ""
}
