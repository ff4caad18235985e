package client_test

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"urbanscribe/internal/api/controllers"
	"urbanscribe/internal/client"
	"urbanscribe/internal/geo"
	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/services"
	"urbanscribe/internal/session"
	"urbanscribe/pkg/middleware"
	"urbanscribe/pkg/utils"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())

	journeyController := controllers.NewJourneyController(services.NewJourneyService(0))
	uploadController := controllers.NewUploadController(services.NewUploadService(0, 0))
	pingController := controllers.NewPingController("ok")

	api := r.Group("/api")
	api.POST("/generate-journey", journeyController.GenerateJourney)
	api.POST("/upload-image", uploadController.UploadImage)
	api.GET("/ping", pingController.Ping)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newSessionStore(srvURL string) *session.Store {
	acc := 15.0
	locations := geo.NewCachedProvider(&geo.StaticProvider{
		Latitude:  40.0,
		Longitude: -74.0,
		Accuracy:  acc,
	}, time.Second, time.Minute)

	return session.NewStore(
		client.NewJourneyClient(srvURL, 5*time.Second),
		client.NewUploadClient(srvURL, 5*time.Second),
		locations,
		5*time.Second,
	)
}

func TestEndToEnd_JourneyGeneration(t *testing.T) {
	srv := newTestServer(t)
	store := newSessionStore(srv.URL)
	ctx := context.Background()

	if err := store.RequestLocation(ctx); err != nil {
		t.Fatalf("request location: %v", err)
	}
	loc := store.Snapshot().Location
	if loc == nil || loc.Latitude != 40.0 || loc.Longitude != -74.0 {
		t.Fatalf("unexpected location: %+v", loc)
	}

	if err := store.GenerateJourney(ctx, "waterfalls"); err != nil {
		t.Fatalf("generate journey: %v", err)
	}

	st := store.Snapshot()
	journey := st.Journey
	if journey == nil {
		t.Fatal("no journey stored")
	}
	if len(journey.Destinations) != 4 {
		t.Errorf("expected exactly 4 destinations, got %d", len(journey.Destinations))
	}
	if journey.Route.Duration != 120 {
		t.Errorf("expected route.duration 120, got %v", journey.Route.Duration)
	}
	if journey.Route.Distance != 3200 {
		t.Errorf("expected route.distance 3200, got %v", journey.Route.Distance)
	}
	start := journey.Destinations[0].Coordinates
	if start.Lon() != -74.0 || start.Lat() != 40.0 {
		t.Errorf("destinations[0] must be (-74, 40), got (%v, %v)", start.Lon(), start.Lat())
	}
	if !st.ShowJourneyCard {
		t.Error("journey card should be open")
	}
}

func TestEndToEnd_ImageUpload(t *testing.T) {
	srv := newTestServer(t)
	store := newSessionStore(srv.URL)
	ctx := context.Background()

	file := request_models.ImageFile{
		Filename:    "trip.png",
		ContentType: "image/png",
		Size:        2_000_000,
		Data:        bytes.Repeat([]byte{0x42}, 2_000_000),
	}
	if err := store.UploadImage(ctx, file); err != nil {
		t.Fatalf("upload: %v", err)
	}

	st := store.Snapshot()
	if len(st.Uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(st.Uploads))
	}
	result := st.Uploads[0].Result
	if !result.Success {
		t.Error("expected success=true")
	}
	if _, err := time.Parse(time.RFC3339, result.UploadedAt); err != nil {
		t.Errorf("uploadedAt must parse as a valid date, got %q: %v", result.UploadedAt, err)
	}
}

func TestEndToEnd_UploadRejectionSurfacesMessage(t *testing.T) {
	srv := newTestServer(t)
	store := newSessionStore(srv.URL)

	file := request_models.ImageFile{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Size:        5,
		Data:        []byte("hello"),
	}
	err := store.UploadImage(context.Background(), file)
	if !errors.Is(err, utils.ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}

	st := store.Snapshot()
	if len(st.Uploads) != 0 {
		t.Error("rejected file must not join the gallery")
	}
	if st.UploadError == "" {
		t.Error("expected the server's message to land in the upload error field")
	}
}

func TestJourneyClient_Ping(t *testing.T) {
	srv := newTestServer(t)
	c := client.NewJourneyClient(srv.URL, 5*time.Second)

	msg, err := c.Ping(context.Background())
	if err != nil {
		t.Fatalf("ping: %v", err)
	}
	if msg != "ok" {
		t.Errorf("expected configured ping message, got %q", msg)
	}
}

func TestJourneyClient_ServerErrorSurfacesDiagnostic(t *testing.T) {
	srv := newTestServer(t)
	c := client.NewJourneyClient(srv.URL, 5*time.Second)

	// Empty query is rejected at the HTTP boundary with a 400.
	_, err := c.GenerateJourney(context.Background(), "", request_models.Location{Latitude: 1, Longitude: 2})
	if !errors.Is(err, utils.ErrJourneyFailed) {
		t.Fatalf("expected ErrJourneyFailed, got %v", err)
	}
}
