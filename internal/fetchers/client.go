package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"meteocast/internal/conditions"
	"meteocast/internal/logger"
	"meteocast/internal/models"
)

// DefaultTimeout bounds each upstream feed request.
const DefaultTimeout = 10 * time.Second

// FeedURLs names the upstream documents of one fetch cycle. Alerts is
// optional; an empty URL disables alert fetching.
type FeedURLs struct {
	Observations string
	Forecast     string
	SeaTemps     string
	Alerts       string
}

// Client fetches the DHMZ feeds and assembles the normalized model.
type Client struct {
	http    *resty.Client
	decoder *conditions.Decoder
	log     *logger.Logger
}

// NewClient creates a DHMZ client. A zero timeout falls back to
// DefaultTimeout; a nil decoder falls back to the default condition table.
func NewClient(timeout time.Duration, decoder *conditions.Decoder) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if decoder == nil {
		decoder = conditions.NewDefaultDecoder()
	}

	client := resty.New()
	client.SetTimeout(timeout)

	return &Client{
		http:    client,
		decoder: decoder,
		log:     logger.Global().WithComponent("fetchers"),
	}
}

// FetchAll retrieves all feeds concurrently, parses them, and returns one
// complete normalized model. Any observation, forecast, or sea-temperature
// failure fails the whole cycle; no partial model is ever returned. Alert
// failures are soft: logged, and the model is built without alerts.
func (c *Client) FetchAll(ctx context.Context, urls FeedURLs) (*models.MeteoData, error) {
	c.log.Debug("Starting fetch cycle")

	obsChan := make(chan []models.ObservationRecord, 1)
	fcChan := make(chan []models.ForecastRecord, 1)
	seaChan := make(chan []models.SeaTemperatureRecord, 1)
	alertsChan := make(chan []models.Alert, 1)
	errChan := make(chan error, 3)

	go func() {
		records, err := c.fetchObservations(ctx, urls.Observations)
		if err != nil {
			errChan <- err
			return
		}
		obsChan <- records
	}()

	go func() {
		records, err := c.fetchForecast(ctx, urls.Forecast)
		if err != nil {
			errChan <- err
			return
		}
		fcChan <- records
	}()

	go func() {
		records, err := c.fetchSeaTemperatures(ctx, urls.SeaTemps)
		if err != nil {
			errChan <- err
			return
		}
		seaChan <- records
	}()

	sources := 3
	if urls.Alerts != "" {
		sources++
		go func() {
			alerts, err := c.fetchAlerts(ctx, urls.Alerts)
			if err != nil {
				c.log.Warn("Alerts feed unavailable", map[string]interface{}{"error": err.Error()})
				alertsChan <- nil
				return
			}
			alertsChan <- alerts
		}()
	}

	var (
		observations []models.ObservationRecord
		forecasts    []models.ForecastRecord
		seaTemps     []models.SeaTemperatureRecord
		alerts       []models.Alert
		firstErr     error
	)

	for completed := 0; completed < sources; completed++ {
		select {
		case observations = <-obsChan:
		case forecasts = <-fcChan:
		case seaTemps = <-seaChan:
		case alerts = <-alertsChan:
		case err := <-errChan:
			if firstErr == nil {
				firstErr = err
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if firstErr != nil {
		c.log.Error("Fetch cycle failed", firstErr)
		return nil, classifyFeedError(firstErr)
	}

	c.log.Info("Fetch cycle completed", map[string]interface{}{
		"locations":    len(observations),
		"forecasts":    len(forecasts),
		"sea_stations": len(seaTemps),
		"alerts":       len(alerts),
	})
	return models.NewMeteoData(observations, seaTemps, forecasts, alerts, c.decoder), nil
}

func (c *Client) fetchObservations(ctx context.Context, url string) ([]models.ObservationRecord, error) {
	body, err := c.fetchFeed(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseObservations(body)
}

func (c *Client) fetchForecast(ctx context.Context, url string) ([]models.ForecastRecord, error) {
	body, err := c.fetchFeed(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseForecast(body)
}

func (c *Client) fetchSeaTemperatures(ctx context.Context, url string) ([]models.SeaTemperatureRecord, error) {
	body, err := c.fetchFeed(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseSeaTemperatures(body)
}

func (c *Client) fetchAlerts(ctx context.Context, url string) ([]models.Alert, error) {
	body, err := c.fetchFeed(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseAlerts(body)
}

// fetchFeed performs one GET and classifies transport and status failures.
func (c *Client) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		return nil, &CommunicationError{url: url, cause: err}
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return nil, &AuthenticationError{url: url}
	case code != http.StatusOK:
		return nil, &ClientError{msg: fmt.Sprintf("feed %s returned status %d", url, code)}
	}

	return resp.Body(), nil
}

// classifyFeedError maps a feed failure onto the public error surface.
// Authentication and communication failures pass through; anything else,
// malformed payloads included, surfaces wrapped as a ClientError.
func classifyFeedError(err error) error {
	var auth *AuthenticationError
	var comm *CommunicationError
	var client *ClientError
	if errors.As(err, &auth) || errors.As(err, &comm) || errors.As(err, &client) {
		return err
	}
	return &ClientError{msg: "weather data fetch failed", cause: err}
}
