// Package gcalendar wraps the Google Calendar API for the optional mirror:
// events saved locally can be pushed to an external calendar on a best-effort
// basis.
package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a client from a credentials JSON file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a client from raw credentials JSON.
// Service Account credentials are tried first, then OAuth2 installed-app
// credentials paired with a local token.json.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("OAuth installed-app credentials need a token.json next to the binary")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client,
// mainly for tests.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent mirrors an event into the target calendar.
func (c *Client) CreateEvent(ctx context.Context, in EventInput) (*Event, error) {
	created, err := c.service.Events.Insert(calendarID(in.CalendarID), apiEvent(in)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return fromAPI(created, in), nil
}

// UpdateEvent replaces the mirrored event with the given remote ID.
func (c *Client) UpdateEvent(ctx context.Context, remoteID string, in EventInput) (*Event, error) {
	updated, err := c.service.Events.Update(calendarID(in.CalendarID), remoteID, apiEvent(in)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event %s: %w", remoteID, err)
	}
	return fromAPI(updated, in), nil
}

// DeleteEvent removes the mirrored event with the given remote ID.
func (c *Client) DeleteEvent(ctx context.Context, targetCalendarID, remoteID string) error {
	if err := c.service.Events.Delete(calendarID(targetCalendarID), remoteID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", remoteID, err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func apiEvent(in EventInput) *calendar.Event {
	return &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Location:    in.Location,
		Start: &calendar.EventDateTime{
			DateTime: in.StartTime.Format(time.RFC3339),
			TimeZone: in.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: in.EndTime.Format(time.RFC3339),
			TimeZone: in.Timezone,
		},
	}
}

func fromAPI(e *calendar.Event, in EventInput) *Event {
	return &Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		Location:    e.Location,
		HTMLLink:    e.HtmlLink,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
	}
}
