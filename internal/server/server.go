package server

import (
	"context"
	"net/http"
	"sync/atomic"

	"meteocast/internal/config"
	"meteocast/internal/conditions"
	"meteocast/internal/fetchers"
	"meteocast/internal/logger"
	"meteocast/internal/models"
)

// Server exposes the normalized weather model over HTTP. It holds the latest
// complete model behind an atomic pointer: a refresh swaps the whole model in
// one step, so readers never observe a partially built one, and a failed
// refresh leaves the previous (stale but valid) model in place.
type Server struct {
	Config *config.Config
	Client *fetchers.Client

	current atomic.Pointer[models.MeteoData]
	log     *logger.Logger
}

// NewServer creates a server around a DHMZ client built from the config.
func NewServer(cfg *config.Config) *Server {
	return &Server{
		Config: cfg,
		Client: fetchers.NewClient(cfg.FetchTimeout, conditions.NewDefaultDecoder()),
		log:    logger.Global().WithComponent("server"),
	}
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/refresh", s.HandleRefresh)
	mux.HandleFunc("/current", s.HandleCurrent)
	mux.HandleFunc("/forecast", s.HandleForecast)
	mux.HandleFunc("/sea", s.HandleSea)
	mux.HandleFunc("/locations", s.HandleLocations)
	mux.HandleFunc("/alerts", s.HandleAlerts)
	return mux
}

// Refresh fetches all feeds and publishes the new model on success.
func (s *Server) Refresh(ctx context.Context) (*models.MeteoData, error) {
	data, err := s.Client.FetchAll(ctx, fetchers.FeedURLs{
		Observations: s.Config.ObservationsURL,
		Forecast:     s.Config.ForecastURL,
		SeaTemps:     s.Config.SeaTempURL,
		Alerts:       s.Config.AlertsURL,
	})
	if err != nil {
		s.log.Error("Refresh failed, keeping previous model", err)
		return nil, err
	}
	s.current.Store(data)
	return data, nil
}

// Data returns the latest published model, fetching one first if none has
// been published yet.
func (s *Server) Data(ctx context.Context) (*models.MeteoData, error) {
	if data := s.current.Load(); data != nil {
		return data, nil
	}
	return s.Refresh(ctx)
}
