package fetchers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meteocast/internal/conditions"
)

const alertsRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Weather warnings</title>
    <item>
      <title>Yellow wind warning</title>
      <description>Strong bura along the coast.</description>
      <link>https://example.test/warnings/1</link>
      <pubDate>Fri, 29 Aug 2026 06:00:00 +0200</pubDate>
    </item>
  </channel>
</rss>`

// newFeedServer serves the standard fixtures by path.
func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/hrvatska_n.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(observationsXML))
	})
	mux.HandleFunc("/3d_graf_i_simboli.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastXML))
	})
	mux.HandleFunc("/more_n.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(seaXML))
	})
	mux.HandleFunc("/alerts.rss", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(alertsRSS))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func feedURLs(base string) FeedURLs {
	return FeedURLs{
		Observations: base + "/hrvatska_n.xml",
		Forecast:     base + "/3d_graf_i_simboli.xml",
		SeaTemps:     base + "/more_n.xml",
	}
}

func TestFetchAll(t *testing.T) {
	server := newFeedServer(t)
	client := NewClient(5*time.Second, nil)

	urls := feedURLs(server.URL)
	urls.Alerts = server.URL + "/alerts.rss"

	data, err := client.FetchAll(context.Background(), urls)
	if err != nil {
		t.Fatalf("FetchAll failed: %v", err)
	}

	if temp := data.CurrentTemperature("Zagreb"); temp == nil || *temp != "21.5" {
		t.Errorf("Expected Zagreb temperature 21.5, got %v", temp)
	}
	if cond := data.CurrentCondition("Zagreb"); cond != conditions.Sunny {
		t.Errorf("Expected Zagreb condition sunny, got %q", cond)
	}
	if got := len(data.SeaTemperatures); got != 2 {
		t.Errorf("Expected 2 sea stations, got %d", got)
	}
	if got := len(data.Alerts); got != 1 {
		t.Fatalf("Expected 1 alert, got %d", got)
	}
	if data.Alerts[0].Title != "Yellow wind warning" {
		t.Errorf("Unexpected alert title %q", data.Alerts[0].Title)
	}
}

func TestFetchAllAuthenticationError(t *testing.T) {
	server := newFeedServer(t)

	denied := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer denied.Close()

	client := NewClient(5*time.Second, nil)
	urls := feedURLs(server.URL)
	urls.Observations = denied.URL

	_, err := client.FetchAll(context.Background(), urls)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Errorf("Expected AuthenticationError, got %T: %v", err, err)
	}
}

func TestFetchAllCommunicationError(t *testing.T) {
	server := newFeedServer(t)

	// A closed server refuses connections.
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closedURL := closed.URL
	closed.Close()

	client := NewClient(2*time.Second, nil)
	urls := feedURLs(server.URL)
	urls.SeaTemps = closedURL

	_, err := client.FetchAll(context.Background(), urls)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	var commErr *CommunicationError
	if !errors.As(err, &commErr) {
		t.Errorf("Expected CommunicationError, got %T: %v", err, err)
	}
}

func TestFetchAllMalformedFeedSurfacesAsClientError(t *testing.T) {
	server := newFeedServer(t)

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<Hrvatska></Hrvatska>`))
	}))
	defer broken.Close()

	client := NewClient(5*time.Second, nil)
	urls := feedURLs(server.URL)
	urls.Observations = broken.URL

	_, err := client.FetchAll(context.Background(), urls)
	if err == nil {
		t.Fatal("Expected error for empty observation feed, got nil")
	}

	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Errorf("Expected ClientError, got %T: %v", err, err)
	}
	var malformedErr *MalformedFeedError
	if !errors.As(err, &malformedErr) {
		t.Errorf("Expected wrapped MalformedFeedError, got %T: %v", err, err)
	}
}

func TestFetchAllUnexpectedStatus(t *testing.T) {
	server := newFeedServer(t)

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	client := NewClient(5*time.Second, nil)
	urls := feedURLs(server.URL)
	urls.Forecast = failing.URL

	_, err := client.FetchAll(context.Background(), urls)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Errorf("Expected ClientError, got %T: %v", err, err)
	}
}

func TestFetchAllAlertFailureIsSoft(t *testing.T) {
	server := newFeedServer(t)

	client := NewClient(5*time.Second, nil)
	urls := feedURLs(server.URL)
	urls.Alerts = server.URL + "/no-such-feed"

	data, err := client.FetchAll(context.Background(), urls)
	if err != nil {
		t.Fatalf("Expected soft alert failure, got error: %v", err)
	}
	if len(data.Alerts) != 0 {
		t.Errorf("Expected no alerts, got %d", len(data.Alerts))
	}
	if len(data.Observations) == 0 {
		t.Error("Expected observations despite alert failure")
	}
}

func TestFetchAllContextCancellation(t *testing.T) {
	server := newFeedServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(5*time.Second, nil)
	_, err := client.FetchAll(ctx, feedURLs(server.URL))
	if err == nil {
		t.Fatal("Expected error for cancelled context, got nil")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(0, nil)
	if client.http == nil {
		t.Error("HTTP client not initialized")
	}
	if client.decoder == nil {
		t.Error("Decoder not initialized")
	}
}
