package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/ramadan/internal/broadcast"
	"github.com/Nixie-Tech-LLC/ramadan/internal/config"
	"github.com/Nixie-Tech-LLC/ramadan/internal/islamicapi"
	"github.com/Nixie-Tech-LLC/ramadan/internal/logger"
	"github.com/Nixie-Tech-LLC/ramadan/internal/schedule"
)

func main() {
	// load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.IslamicAPIKey == "" {
		log.Warn().Msg("ISLAMIC_API_KEY is not set, /ramadan will answer 500")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	client := islamicapi.NewClient(cfg.IslamicAPIBase, cfg.UpstreamTimeout)
	fetcher := schedule.NewFetcher(client, cfg.IslamicAPIKey)

	publisher := initPublisher(cfg)
	defer publisher.Close()

	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, fetcher, publisher)

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// initPublisher connects to MQTT when a broker is configured. A broker that
// cannot be reached disables broadcasting rather than the API.
func initPublisher(cfg *config.Config) broadcast.Publisher {
	if cfg.MQTTBrokerURL == "" {
		return broadcast.Nop{}
	}

	p, err := broadcast.NewMQTTPublisher(cfg.MQTTBrokerURL, cfg.MQTTClientID, cfg.MQTTTopicPrefix)
	if err != nil {
		log.Error().Err(err).Str("broker", cfg.MQTTBrokerURL).Msg("schedule broadcast disabled")
		return broadcast.Nop{}
	}
	log.Info().Str("broker", cfg.MQTTBrokerURL).Str("prefix", cfg.MQTTTopicPrefix).Msg("broadcasting schedules over MQTT")
	return p
}
