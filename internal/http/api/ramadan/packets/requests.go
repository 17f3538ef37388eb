package packets

// REQUESTS FOR /ramadan

// RamadanQuery carries lat and lon exactly as the client sent them; they are
// opaque to us and IslamicAPI does its own validation.
type RamadanQuery struct {
	Lat string
	Lon string
}
