package request_models

// Location is a single geolocation reading as sent by the client.
// A reading is immutable once captured; a later reading replaces it wholesale.
type Location struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

// GenerateJourneyRequest carries the free-text interest query together with
// the client's current location. Location is a pointer so a missing field can
// be told apart from a reading at (0, 0).
type GenerateJourneyRequest struct {
	Query    string    `json:"query"`
	Location *Location `json:"location"`
}
