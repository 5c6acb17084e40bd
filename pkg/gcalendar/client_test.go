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

	"deal-tracker/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	t.Run("broken json", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Error("expected decoding failure")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
		if err == nil {
			t.Error("expected reading file error")
		}
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		if err := os.WriteFile(path, []byte(`{"broken":true}`), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path)
		if err == nil {
			t.Error("expected failure loading broken file")
		}
	})
}

func TestCreateReminder(t *testing.T) {
	date := time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("all-day event with lead reminder", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/deals@example.com/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"id":"evt-1","summary":"Refinance: 12 Main St","htmlLink":"https://calendar.google.com/evt-1"}`))
		})

		rem, err := client.CreateReminder(context.Background(), gcalendar.ReminderRequest{
			CalendarID: "deals@example.com",
			Title:      "Refinance: 12 Main St",
			Date:       date,
			Timezone:   "America/New_York",
			LeadDays:   7,
		})
		if err != nil {
			t.Fatalf("CreateReminder: %v", err)
		}
		if rem.ID != "evt-1" || rem.HTMLLink != "https://calendar.google.com/evt-1" {
			t.Errorf("unexpected reminder: %+v", rem)
		}

		start, _ := got["start"].(map[string]any)
		end, _ := got["end"].(map[string]any)
		if start["date"] != "2027-03-15" || end["date"] != "2027-03-16" {
			t.Errorf("expected all-day range, got start=%v end=%v", start, end)
		}
		reminders, _ := got["reminders"].(map[string]any)
		overrides, _ := reminders["overrides"].([]any)
		if len(overrides) != 1 {
			t.Fatalf("expected one override, got %v", reminders)
		}
		if m := overrides[0].(map[string]any)["minutes"]; m != float64(7*24*60) {
			t.Errorf("expected lead of 7 days in minutes, got %v", m)
		}
	})

	t.Run("defaults to primary calendar", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" {
				_, _ = w.Write([]byte(`{"id":"evt-2"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		rem, err := client.CreateReminder(context.Background(), gcalendar.ReminderRequest{Title: "x", Date: date})
		if err != nil {
			t.Fatalf("CreateReminder: %v", err)
		}
		if rem.ID != "evt-2" {
			t.Errorf("expected evt-2, got %s", rem.ID)
		}
	})

	t.Run("zero date", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})
		_, err := client.CreateReminder(context.Background(), gcalendar.ReminderRequest{Title: "x"})
		if !errors.Is(err, gcalendar.ErrMissingDate) {
			t.Errorf("expected ErrMissingDate, got %v", err)
		}
	})

	t.Run("api error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
		})
		_, err := client.CreateReminder(context.Background(), gcalendar.ReminderRequest{Title: "x", Date: date})
		if err == nil {
			t.Error("expected error on 403")
		}
	})
}
