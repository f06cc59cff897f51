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

const (
	defaultCalendarID = "primary"
	defaultTokenPath  = "token.json"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON accepts either a service account key or installed-app
// OAuth credentials. The latter needs a cached token in token.json.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope); err == nil {
		return newClient(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	oauthCfg, err := installedAppConfig(credentialsJSON)
	if err != nil {
		return nil, err
	}

	tok, err := readToken(defaultTokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opt option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func installedAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	var creds struct {
		Installed *struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if creds.Installed == nil || creds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: neither service account nor installed app")
	}
	return &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}, nil
}

func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("installed app credentials need a cached token at %s: %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}

// CreateEvent inserts an event and returns its link.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       eventTime(req.StartTime, req.Timezone, req.AllDay),
		End:         eventTime(req.EndTime, req.Timezone, req.AllDay),
	}
	if req.AllDay {
		// end date is exclusive for all-day events
		event.End = eventTime(req.StartTime.AddDate(0, 0, 1), req.Timezone, true)
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		AllDay:    req.AllDay,
	}, nil
}

func eventTime(t time.Time, tz string, allDay bool) *calendar.EventDateTime {
	if allDay {
		return &calendar.EventDateTime{Date: t.Format(dateLayout), TimeZone: tz}
	}
	return &calendar.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: tz}
}
