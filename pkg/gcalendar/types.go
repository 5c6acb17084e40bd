package gcalendar

import "time"

// ReminderRequest describes an all-day calendar entry for a deal milestone.
type ReminderRequest struct {
	CalendarID  string
	Title       string
	Description string
	Date        time.Time
	Timezone    string
	// LeadDays adds a popup reminder this many days before Date. Zero keeps calendar defaults.
	LeadDays int
}

// Reminder is the created calendar entry.
type Reminder struct {
	ID       string
	Title    string
	Date     time.Time
	HTMLLink string
}
