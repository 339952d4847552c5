// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roost/internal/ai"
	"roost/internal/config"
	httptransport "roost/internal/http"
	"roost/internal/infra"
	"roost/internal/maps"
	"roost/internal/modules/appointment"
	"roost/internal/modules/assistant"
	"roost/internal/modules/favorite"
	"roost/internal/modules/listing"
	"roost/internal/modules/reminder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	classifier, err := ai.NewGeminiClassifier(ctx, cfg.AI.GeminiKey)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer classifier.Close()

	var geocoder listing.Geocoder
	if cfg.Maps.APIKey != "" {
		geocodeSvc, err := maps.NewGeocodeService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		geocoder = geocodeSvc
	} else {
		log.Print("MAPS_API_KEY not set; new listings get default coordinates")
	}

	listingStore := listing.NewStore(dbPool, redisClient, cfg.Listing.CacheTTL)
	listingSvc := listing.NewService(listingStore, geocoder)

	reminderStore := reminder.NewStore(dbPool)
	reminderSvc := reminder.NewService(reminderStore)

	favoriteStore := favorite.NewStore(dbPool)
	favoriteSvc := favorite.NewService(favoriteStore)

	appointmentStore := appointment.NewStore(dbPool)
	appointmentSvc := appointment.NewService(appointmentStore)

	assistantSvc := assistant.NewService(classifier, listingSvc, reminderSvc)

	router := httptransport.NewRouter(assistantSvc, listingSvc, reminderSvc, favoriteSvc, appointmentSvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
