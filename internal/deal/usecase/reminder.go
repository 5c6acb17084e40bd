package usecase

import (
	"context"
	"fmt"

	"deal-tracker/internal/deal"
	"deal-tracker/pkg/gcalendar"
)

// scheduleReminder puts the deal's sale/refinance date on the calendar. Failures are logged
// and never fail the write that triggered them.
func (uc *implUseCase) scheduleReminder(ctx context.Context, d deal.Deal) {
	if uc.reminder.Scheduler == nil || d.SaleOrRefinanceDate == "" || d.MajorCapitalEvent {
		return
	}

	date, ok := parseDate(d.SaleOrRefinanceDate)
	if !ok || date.Before(uc.now()) {
		return
	}

	rem, err := uc.reminder.Scheduler.CreateReminder(ctx, gcalendar.ReminderRequest{
		CalendarID:  uc.reminder.CalendarID,
		Title:       fmt.Sprintf("Sale/refinance: %s", d.Address),
		Description: fmt.Sprintf("Deal %s\nPurchase price: %s\nEstimated value: %s", d.ID, d.PurchasePrice, d.EstimatedValue),
		Date:        date,
		Timezone:    uc.reminder.Timezone,
		LeadDays:    uc.reminder.LeadDays,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.scheduleReminder CreateReminder deal=%s: %v", d.ID, err)
		return
	}
	uc.l.Infof(ctx, "uc.scheduleReminder deal=%s event=%s", d.ID, rem.ID)
}
