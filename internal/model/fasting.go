package model

import "encoding/json"

// FastingDayRaw is one element of IslamicAPI's data.fasting list. Upstream
// guarantees nothing, so every field may be absent. The optional fields are
// kept as raw JSON so an odd type there never costs us the day.
type FastingDayRaw struct {
	Date          string          `json:"date"`
	Day           json.RawMessage `json:"day"`            // string or number
	HijriReadable json.RawMessage `json:"hijri_readable"` // "1 Ramadan 1446"
	Time          *FastingTimes   `json:"time"`
}

type FastingTimes struct {
	Sahur string `json:"sahur"` // "5:42 AM"
	Iftar string `json:"iftar"` // "5:48 PM"
}

// FastingDayClean is what we hand back to the browser. Sahur and Iftar are
// always 24-hour HH:MM.
type FastingDayClean struct {
	Date          string          `json:"date"`
	Sahur         string          `json:"sahur"`
	Iftar         string          `json:"iftar"`
	HijriReadable json.RawMessage `json:"hijri_readable"`
	Day           json.RawMessage `json:"day"`
}
