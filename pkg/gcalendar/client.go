package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrMissingToken = errors.New("gcalendar: OAuth desktop credentials need a token file")

// Client wraps the Google Calendar events API.
type Client struct {
	service *calendar.Service
}

// New reads cfg.CredentialsPath and builds a client from it.
func New(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return NewFromJSON(ctx, data, cfg.TokenPath)
}

// NewFromJSON accepts service account JSON, or OAuth desktop-app JSON plus
// a saved token at tokenPath.
func NewFromJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtCfg, jwtErr := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if jwtErr == nil {
		return newService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	oauthCfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", jwtErr)
	}

	if tokenPath == "" {
		return nil, ErrMissingToken
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	return newService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, &tok)))
}

// NewFromHTTP builds a client on a pre-authorised HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newService(ctx, option.WithHTTPClient(httpClient))
}

func newService(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent inserts a timed event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HTMLLink: created.HtmlLink,
		Start:    req.StartTime,
		End:      req.EndTime,
	}, nil
}
