// Command client is a terminal stand-in for the browser front end: it wires a
// session store to the HTTP API, requests a location, generates a journey for
// a query, and optionally uploads an image.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"urbanscribe/internal/client"
	"urbanscribe/internal/config"
	"urbanscribe/internal/geo"
	"urbanscribe/internal/models/request_models"
	"urbanscribe/internal/session"
	"urbanscribe/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	serverURL := flag.String("server", "http://localhost:8080", "base URL of the urbanscribe API")
	query := flag.String("query", "a quiet walk with lots of historical relevance", "what kind of journey to generate")
	imagePath := flag.String("image", "", "optional image file to upload after the journey")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	locations := geo.NewCachedProvider(&geo.StaticProvider{
		Latitude:  cfg.Location.Latitude,
		Longitude: cfg.Location.Longitude,
		Accuracy:  cfg.Location.Accuracy,
	}, cfg.Location.Timeout(), cfg.Location.MaxAge())

	store := session.NewStore(
		client.NewJourneyClient(*serverURL, cfg.Client.Timeout()),
		client.NewUploadClient(*serverURL, cfg.Client.Timeout()),
		locations,
		cfg.Client.Timeout(),
	)

	ctx := context.Background()

	if msg, err := client.NewJourneyClient(*serverURL, cfg.Client.Timeout()).Ping(ctx); err != nil {
		log.Fatalf("server unreachable at %s: %v", *serverURL, err)
	} else {
		fmt.Printf("server says: %s\n", msg)
	}

	if err := store.RequestLocation(ctx); err != nil {
		log.Fatalf("request location: %v", err)
	}
	loc := store.Snapshot().Location
	fmt.Printf("located at %.4f, %.4f\n", loc.Latitude, loc.Longitude)

	if err := store.GenerateJourney(ctx, *query); err != nil {
		log.Fatalf("generate journey: %v", err)
	}

	journey := store.Snapshot().Journey
	fmt.Printf("\n%s\n\n%s\n", journey.Title, journey.Narrative)
	if journey.FunFact != "" {
		fmt.Printf("\nFun fact: %s\n", journey.FunFact)
	}
	fmt.Printf("\nRoute: %d points, %.0f s, %.0f m\n",
		len(journey.Route.Coordinates), journey.Route.Duration, journey.Route.Distance)
	for i, d := range journey.Destinations {
		fmt.Printf("  %d. %s (%.4f, %.4f)\n", i+1, d.Name, d.Coordinates.Lat(), d.Coordinates.Lon())
	}

	if *imagePath != "" {
		uploadImage(ctx, store, *imagePath)
	}
}

func uploadImage(ctx context.Context, store *session.Store, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read image: %v", err)
	}

	file := request_models.ImageFile{
		Filename:    filepath.Base(path),
		ContentType: mime.TypeByExtension(filepath.Ext(path)),
		Size:        int64(len(data)),
		Data:        data,
	}

	if err := store.UploadImage(ctx, file); err != nil {
		log.Fatalf("upload image: %v", err)
	}

	uploads := store.Snapshot().Uploads
	last := uploads[len(uploads)-1]
	fmt.Printf("\nuploaded %s (%d bytes) -> %s at %s\n",
		last.Result.Filename, last.Result.Size, last.Result.ImageURL, last.Result.UploadedAt)
}
