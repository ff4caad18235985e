package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"urbanscribe/internal/geo"
	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/models/response_models"
	"urbanscribe/internal/services"
	"urbanscribe/pkg/utils"
)

// UploadedImage is one entry in the upload gallery: the local file reference
// plus the server acknowledgment once the round trip confirmed it.
type UploadedImage struct {
	File      request_models.ImageFile
	Result    response_models.UploadResult
	Confirmed bool
}

// State is everything the presentation layer renders. Snapshot returns a copy
// so readers never observe a half-applied transition.
type State struct {
	Location        *request_models.Location
	LocationLoading bool
	LocationError   string

	Journey         *response_models.Journey
	JourneyLoading  bool
	JourneyError    string
	ShowJourneyCard bool

	Uploads          []UploadedImage
	UploadInProgress bool
	UploadError      string
}

// DefaultRequestTimeout bounds every outbound call started by the store, so a
// hung backend settles as a timeout failure instead of pinning a loading flag.
const DefaultRequestTimeout = 15 * time.Second

// Store holds all session state and drives the three asynchronous subsystems
// (geolocation, journey generation, image upload). It is constructed
// explicitly and passed by reference; every test gets a fresh one.
//
// Each subsystem tags its calls with a monotonically increasing sequence
// number. A call that settles after a newer one was issued discards its
// result, so a rapid double-submit can never overwrite fresher state with a
// stale response.
type Store struct {
	mu    sync.Mutex
	state State

	journeys  services.JourneyServiceInterface
	uploads   services.UploadServiceInterface
	locations geo.Provider
	timeout   time.Duration

	journeySeq  uint64
	uploadSeq   uint64
	locationSeq uint64
}

func NewStore(
	journeys services.JourneyServiceInterface,
	uploads services.UploadServiceInterface,
	locations geo.Provider,
	timeout time.Duration,
) *Store {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Store{
		journeys:  journeys,
		uploads:   uploads,
		locations: locations,
		timeout:   timeout,
	}
}

// Snapshot returns a copy of the current state. The Location and Journey
// pointers reference immutable values; the uploads slice is copied.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.Uploads = make([]UploadedImage, len(s.state.Uploads))
	copy(out.Uploads, s.state.Uploads)
	return out
}

// RequestLocation performs one geolocation lookup and replaces the current
// reading on success. On failure the previous reading is left untouched
// (last known good) and only the error field is set.
func (s *Store) RequestLocation(ctx context.Context) error {
	s.mu.Lock()
	s.locationSeq++
	seq := s.locationSeq
	s.state.LocationLoading = true
	s.state.LocationError = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reading, err := s.locations.CurrentLocation(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.locationSeq {
		return err // a newer request owns the state now
	}
	s.state.LocationLoading = false
	if err != nil {
		s.state.LocationError = err.Error()
		return err
	}
	s.state.Location = &request_models.Location{
		Latitude:  reading.Latitude,
		Longitude: reading.Longitude,
		Accuracy:  reading.Accuracy,
	}
	return nil
}

// GenerateJourney requires a current location: without one it records a
// journey error and returns without calling the service at all. Otherwise it
// runs one request and, if still the latest, stores the journey and opens the
// journey card, or stores the failure.
func (s *Store) GenerateJourney(ctx context.Context, query string) error {
	s.mu.Lock()
	if s.state.Location == nil {
		s.state.JourneyError = utils.ErrMissingLocation.Error()
		s.mu.Unlock()
		return utils.ErrMissingLocation
	}
	loc := *s.state.Location
	s.journeySeq++
	seq := s.journeySeq
	s.state.JourneyLoading = true
	s.state.JourneyError = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	journey, err := s.journeys.GenerateJourney(ctx, query, loc)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.journeySeq {
		return err
	}
	s.state.JourneyLoading = false
	if err != nil {
		s.state.JourneyError = fmt.Sprintf("%s: %s", utils.ErrJourneyFailed.Error(), err.Error())
		return err
	}
	s.state.Journey = journey
	s.state.ShowJourneyCard = true
	return nil
}

// UploadImage sends one file to the upload service. A new upload clears any
// prior upload error. The file joins the gallery only after the server
// confirmed it.
func (s *Store) UploadImage(ctx context.Context, file request_models.ImageFile) error {
	s.mu.Lock()
	s.uploadSeq++
	seq := s.uploadSeq
	s.state.UploadInProgress = true
	s.state.UploadError = ""
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.uploads.UploadImage(ctx, file)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.uploadSeq {
		return err
	}
	s.state.UploadInProgress = false
	if err != nil {
		s.state.UploadError = err.Error()
		return err
	}
	s.state.Uploads = append(s.state.Uploads, UploadedImage{
		File:      file,
		Result:    *result,
		Confirmed: true,
	})
	return nil
}

// RemoveUpload deletes the gallery entry at index i, preserving the relative
// order of the rest. Returns false when i is out of range.
func (s *Store) RemoveUpload(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.state.Uploads) {
		return false
	}
	s.state.Uploads = append(s.state.Uploads[:i], s.state.Uploads[i+1:]...)
	return true
}

// SetLocation replaces the current reading directly, e.g. when the user picks
// a point on the map instead of using geolocation.
func (s *Store) SetLocation(loc *request_models.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Location = loc
}

// SetJourney replaces the journey wholesale. Clearing it also closes the
// journey card: the card is never visible without data behind it.
func (s *Store) SetJourney(j *response_models.Journey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Journey = j
	if j == nil {
		s.state.ShowJourneyCard = false
	}
}

// SetShowJourneyCard toggles the journey card. Showing it is a no-op while no
// journey exists.
func (s *Store) SetShowJourneyCard(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if show && s.state.Journey == nil {
		return
	}
	s.state.ShowJourneyCard = show
}

func (s *Store) ClearJourneyError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.JourneyError = ""
}

func (s *Store) ClearUploadError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UploadError = ""
}

func (s *Store) ClearLocationError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LocationError = ""
}
