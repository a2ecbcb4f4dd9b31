package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"meteocast/internal/fetchers"
)

// HandleHealth provides the health check endpoint.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if data := s.current.Load(); data != nil {
		health["last_fetch"] = data.FetchedAt.UTC().Format(time.RFC3339)
	}

	writeJSON(w, http.StatusOK, health)
}

// HandleRefresh fetches all feeds and publishes a fresh model.
func (s *Server) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := s.Refresh(r.Context())
	if err != nil {
		writeFetchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "success",
		"timestamp":    data.FetchedAt.Format(time.RFC3339),
		"locations":    len(data.Observations),
		"sea_stations": len(data.SeaTemperatures),
		"regions":      len(data.ForecastRegions()),
	})
}

// HandleCurrent serves the current conditions of one location.
func (s *Server) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	location := r.URL.Query().Get("location")
	if location == "" {
		http.Error(w, "location parameter required", http.StatusBadRequest)
		return
	}

	data, err := s.Data(r.Context())
	if err != nil {
		writeFetchError(w, err)
		return
	}
	if !contains(data.Locations(), location) {
		http.Error(w, "unknown location", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"location":       location,
		"temperature":    data.CurrentTemperature(location),
		"humidity":       data.CurrentHumidity(location),
		"pressure":       data.CurrentPressure(location),
		"wind_speed":     data.CurrentWindSpeed(location),
		"wind_direction": data.CurrentWindDirection(location),
		"condition":      data.CurrentCondition(location),
	})
}

// HandleForecast serves a region's forecast, hourly by default or reduced to
// daily entries with ?daily=true.
func (s *Server) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	region := r.URL.Query().Get("region")
	if region == "" {
		http.Error(w, "region parameter required", http.StatusBadRequest)
		return
	}

	data, err := s.Data(r.Context())
	if err != nil {
		writeFetchError(w, err)
		return
	}
	if !contains(data.ForecastRegions(), region) {
		http.Error(w, "unknown region", http.StatusNotFound)
		return
	}

	if r.URL.Query().Get("daily") == "true" {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"region": region,
			"daily":  data.DailyForecasts(region),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"region":     region,
		"dates":      data.ForecastDates(region),
		"conditions": data.ForecastConditions(region),
		"slots":      data.ForecastForRegion(region),
	})
}

// HandleSea serves a station's latest sea-temperature reading.
func (s *Server) HandleSea(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	station := r.URL.Query().Get("station")
	if station == "" {
		http.Error(w, "station parameter required", http.StatusBadRequest)
		return
	}

	data, err := s.Data(r.Context())
	if err != nil {
		writeFetchError(w, err)
		return
	}
	if !contains(data.SeaStations(), station) {
		http.Error(w, "unknown station", http.StatusNotFound)
		return
	}

	resp := map[string]interface{}{
		"station":     station,
		"temperature": data.SeaTemperature(station),
	}
	if at := data.SeaObservationTime(station); at != nil {
		resp["observed_at"] = at.Format(time.RFC3339)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleLocations lists the keys of all three collections.
func (s *Server) HandleLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := s.Data(r.Context())
	if err != nil {
		writeFetchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"locations":    data.Locations(),
		"sea_stations": data.SeaStations(),
		"regions":      data.ForecastRegions(),
	})
}

// HandleAlerts lists current weather warnings.
func (s *Server) HandleAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, err := s.Data(r.Context())
	if err != nil {
		writeFetchError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"alerts": data.Alerts,
		"count":  len(data.Alerts),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeFetchError maps the client error taxonomy onto HTTP statuses.
func writeFetchError(w http.ResponseWriter, err error) {
	var auth *fetchers.AuthenticationError
	var comm *fetchers.CommunicationError
	switch {
	case errors.As(err, &auth):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case errors.As(err, &comm):
		http.Error(w, err.Error(), http.StatusGatewayTimeout)
	default:
		http.Error(w, err.Error(), http.StatusBadGateway)
	}
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
