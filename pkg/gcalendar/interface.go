package gcalendar

import "context"

// Scheduler creates reminder entries on a calendar.
type Scheduler interface {
	CreateReminder(ctx context.Context, req ReminderRequest) (*Reminder, error)
}
