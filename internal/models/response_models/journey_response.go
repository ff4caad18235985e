package response_models

// Coordinate is a (longitude, latitude) pair, GeoJSON axis order.
type Coordinate [2]float64

func (c Coordinate) Lon() float64 { return c[0] }
func (c Coordinate) Lat() float64 { return c[1] }

// Route is an ordered polyline with optional travel metadata.
type Route struct {
	Coordinates []Coordinate `json:"coordinates"`
	Duration    float64      `json:"duration,omitempty"`
	Distance    float64      `json:"distance,omitempty"`
}

// Destination is a named point of interest along a journey.
type Destination struct {
	Name        string     `json:"name"`
	Coordinates Coordinate `json:"coordinates"`
	Description string     `json:"description,omitempty"`
}

// Journey is the complete result of a query+location request. It is created
// wholesale and never partially mutated; a new request replaces it entirely.
type Journey struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Narrative         string        `json:"narrative"`
	FunFact           string        `json:"funFact,omitempty"`
	LocationAwareness string        `json:"locationAwareness,omitempty"`
	Images            []string      `json:"images"`
	Route             Route         `json:"route"`
	Destinations      []Destination `json:"destinations"`
}
