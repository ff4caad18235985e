package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/models/response_models"
	"urbanscribe/pkg/geoutil"
)

type JourneyServiceInterface interface {
	GenerateJourney(ctx context.Context, query string, location request_models.Location) (*response_models.Journey, error)
}

// JourneyService synthesizes journeys deterministically from the query and
// location. It stands in for the narrative-generation and routing backends;
// a production implementation satisfies the same interface.
type JourneyService struct {
	delay time.Duration
}

func NewJourneyService(delay time.Duration) JourneyServiceInterface {
	return &JourneyService{delay: delay}
}

const cannedImageURL = "https://images.unsplash.com/photo-1469474968028-56623f02e42e?w=800&q=80"

// routeDeltas are (lon, lat) offsets from the start point. The first point of
// the route is always the start itself.
var routeDeltas = [4][2]float64{
	{0, 0},
	{0.0032, 0.0014},
	{0.0061, 0.0029},
	{0.0089, 0.0046},
}

const (
	routeDurationSeconds = 120
	routeDistanceMeters  = 3200
)

func (s *JourneyService) GenerateJourney(ctx context.Context, query string, location request_models.Location) (*response_models.Journey, error) {
	if err := sleepFor(ctx, s.delay); err != nil {
		return nil, err
	}

	start := response_models.Coordinate{location.Longitude, location.Latitude}
	theme := themeFromQuery(query)

	coords := make([]response_models.Coordinate, 0, len(routeDeltas))
	for _, d := range routeDeltas {
		coords = append(coords, response_models.Coordinate{
			location.Longitude + d[0],
			location.Latitude + d[1],
		})
	}

	names := [4]string{
		"Your Starting Point",
		theme + " Viewpoint",
		"The " + theme + " Corner",
		theme + " Finale",
	}

	destinations := make([]response_models.Destination, 0, len(coords))
	for i, c := range coords {
		d := response_models.Destination{
			Name:        names[i],
			Coordinates: c,
		}
		if i == 0 {
			d.Description = fmt.Sprintf("Where your %s walk begins.", strings.ToLower(theme))
		} else {
			meters := geoutil.Haversine(start.Lat(), start.Lon(), c.Lat(), c.Lon())
			d.Description = fmt.Sprintf("About %d m from your start, a stop worth lingering at.", int(meters))
		}
		destinations = append(destinations, d)
	}

	journey := &response_models.Journey{
		ID:    uuid.New().String(),
		Title: "The " + theme + " Trail",
		Narrative: fmt.Sprintf(
			"You asked for %q, so this walk strings together four nearby spots that fit the mood. "+
				"Set off from where you stand and let the city unfold one corner at a time.",
			strings.TrimSpace(query)),
		FunFact: fmt.Sprintf(
			"The streets around %.3f, %.3f follow paths that predate any of the buildings on them.",
			location.Latitude, location.Longitude),
		LocationAwareness: fmt.Sprintf(
			"Starting near %.4f, %.4f — the first stop is only a short stroll away.",
			location.Latitude, location.Longitude),
		Images: []string{cannedImageURL, cannedImageURL, cannedImageURL},
		Route: response_models.Route{
			Coordinates: coords,
			Duration:    routeDurationSeconds,
			Distance:    routeDistanceMeters,
		},
		Destinations: destinations,
	}

	return journey, nil
}

// themeFromQuery turns a free-text query into a short title-cased theme,
// e.g. "a quiet walk" -> "A Quiet Walk". Falls back to "City" for blank input.
func themeFromQuery(query string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	if len(words) == 0 {
		return "City"
	}
	if len(words) > 3 {
		words = words[:3]
	}
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func sleepFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
