package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"urbanscribe/cmd/fx/configfx"
	"urbanscribe/cmd/fx/controllersfx"
	"urbanscribe/cmd/fx/journeyfx"
	"urbanscribe/cmd/fx/uploadfx"
	"urbanscribe/internal/api/controllers"
	"urbanscribe/internal/config"
	"urbanscribe/pkg/logging"
	"urbanscribe/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		configfx.Module,
		journeyfx.Module,
		uploadfx.Module,
		controllersfx.Module,

		fx.Invoke(setupLogging),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func setupLogging(cfg *config.Config) {
	logging.Setup(cfg.Log.Level, cfg.Log.Format)
}

func ProvideRouter(
	cfg *config.Config,
	journeyController *controllers.JourneyController,
	uploadController *controllers.UploadController,
	pingController *controllers.PingController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	RegisterRoutes(r, journeyController, uploadController, pingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	journeyController *controllers.JourneyController,
	uploadController *controllers.UploadController,
	pingController *controllers.PingController) {

	api := r.Group("/api")
	api.POST("/generate-journey", journeyController.GenerateJourney)
	api.POST("/upload-image", uploadController.UploadImage)
	api.GET("/ping", pingController.Ping)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting HTTP server", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
