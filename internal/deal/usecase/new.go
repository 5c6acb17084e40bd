package usecase

import (
	"time"

	"github.com/google/uuid"

	"deal-tracker/internal/deal"
	"deal-tracker/internal/deal/repository"
	"deal-tracker/pkg/gcalendar"
	"deal-tracker/pkg/log"
)

// ReminderConfig enables calendar reminders for upcoming sale/refinance dates.
// A nil Scheduler disables them.
type ReminderConfig struct {
	Scheduler  gcalendar.Scheduler
	CalendarID string
	Timezone   string
	LeadDays   int
}

// implUseCase is the private implementation of deal.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	reminder ReminderConfig
	newID    func() string
	now      func() time.Time
}

var _ deal.UseCase = (*implUseCase)(nil)

// New creates a new deal UseCase implementation.
func New(repo repository.Repository, l log.Logger, reminder ReminderConfig) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		reminder: reminder,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}
