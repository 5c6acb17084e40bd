package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	dateLayout        = "2006-01-02"
	minutesPerDay     = 24 * 60
)

var ErrMissingDate = errors.New("gcalendar: reminder date is required")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

var _ Scheduler = (*Client)(nil)

// NewClientFromCredentialsFile creates a Calendar client from a service account JSON key file.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw service account JSON.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateReminder inserts an all-day event on req.Date.
func (c *Client) CreateReminder(ctx context.Context, req ReminderRequest) (*Reminder, error) {
	if req.Date.IsZero() {
		return nil, ErrMissingDate
	}

	day := req.Date.Format(dateLayout)
	event := &calendar.Event{
		Summary:     req.Title,
		Description: req.Description,
		Start:       &calendar.EventDateTime{Date: day, TimeZone: req.Timezone},
		End:         &calendar.EventDateTime{Date: req.Date.AddDate(0, 0, 1).Format(dateLayout), TimeZone: req.Timezone},
	}
	if req.LeadDays > 0 {
		event.Reminders = &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: int64(req.LeadDays * minutesPerDay)},
			},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Reminder{
		ID:       created.Id,
		Title:    created.Summary,
		Date:     req.Date,
		HTMLLink: created.HtmlLink,
	}, nil
}
