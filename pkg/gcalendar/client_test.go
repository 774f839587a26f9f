package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"campus-task-assistant/pkg/gcalendar"
)

const desktopCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &rewriteTransport{
		Transport: hc.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewFromHTTP(context.Background(), hc)
	if err != nil {
		t.Fatalf("NewFromHTTP() error = %v", err)
	}
	return client
}

func TestNewFromJSON(t *testing.T) {
	dir := t.TempDir()
	goodToken := filepath.Join(dir, "token.json")
	os.WriteFile(goodToken, []byte(`{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`), 0o600)
	badToken := filepath.Join(dir, "bad.json")
	os.WriteFile(badToken, []byte(`{"broken": true`), 0o600)

	tests := []struct {
		name      string
		creds     string
		tokenPath string
		wantErr   bool
		wantIs    error
	}{
		{name: "unknown format", creds: `{"broken":true}`, wantErr: true},
		{name: "desktop with token", creds: desktopCreds, tokenPath: goodToken},
		{name: "desktop without token path", creds: desktopCreds, wantErr: true, wantIs: gcalendar.ErrMissingToken},
		{name: "desktop token missing on disk", creds: desktopCreds, tokenPath: filepath.Join(dir, "nope.json"), wantErr: true, wantIs: gcalendar.ErrMissingToken},
		{name: "desktop bad token", creds: desktopCreds, tokenPath: badToken, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gcalendar.NewFromJSON(context.Background(), []byte(tt.creds), tt.tokenPath)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFromJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("expected %v, got %v", tt.wantIs, err)
			}
		})
	}
}

func TestNew_MissingFile(t *testing.T) {
	_, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: filepath.Join(t.TempDir(), "missing.json")})
	if err == nil {
		t.Fatal("expected error for missing credentials file")
	}
}

func TestCreateEvent(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"id":"event-123","summary":"Slides","htmlLink":"https://calendar.google.com/event-uri"}`))
	})

	start := time.Date(2026, 10, 23, 17, 0, 0, 0, time.UTC)
	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Slides",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Timezone:  "UTC",
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if event.HTMLLink != "https://calendar.google.com/event-uri" || event.ID != "event-123" {
		t.Errorf("unexpected event: %+v", event)
	}
	startField, _ := got["start"].(map[string]interface{})
	if startField["dateTime"] != "2026-10-23T17:00:00Z" {
		t.Errorf("start sent = %v", startField)
	}
}

func TestCreateEvent_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "team"})
	if err == nil {
		t.Fatal("expected error")
	}
}
