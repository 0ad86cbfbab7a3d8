package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/repository"
)

// CalendarUsecase turns a user's interests and applications into calendar events.
type CalendarUsecase interface {
	// ListEvents returns interest events (only interests with a deadline) followed by
	// application events, each in collection order.
	ListEvents(ctx context.Context, userID string) ([]model.CalendarEvent, error)
}

type calendarUsecase struct {
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewCalendarUsecase creates a CalendarUsecase. A nil now uses time.Now.
func NewCalendarUsecase(userRepo repository.UserRepository, now func() time.Time) CalendarUsecase {
	if now == nil {
		now = time.Now
	}

	return &calendarUsecase{userRepo: userRepo, now: now}
}

func (u *calendarUsecase) ListEvents(ctx context.Context, userID string) ([]model.CalendarEvent, error) {
	user, err := getUser(ctx, u.userRepo, userID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	events := []model.CalendarEvent{}

	for _, interest := range user.InterestSet().Items() {
		if interest.Deadline == nil || interest.Deadline.IsZero() {
			continue
		}

		daysUntil := daysBetween(now, *interest.Deadline)
		events = append(events, model.CalendarEvent{
			ID:    fmt.Sprintf("%s:%s", interest.OpportunityType, interest.OpportunityID),
			Title: fmt.Sprintf("%s (%s)", interest.OpportunityName, interest.Platform),
			Start: *interest.Deadline,
			End:   *interest.Deadline,
			Type:  model.CalendarEventInterest,
			Details: map[string]string{
				"platform":        interest.Platform,
				"link":            interest.Link,
				"opportunityName": interest.OpportunityName,
				"opportunityType": string(interest.OpportunityType),
			},
			DaysUntil: &daysUntil,
		})
	}

	for _, application := range user.JobApplicationSet().Items() {
		events = append(events, model.CalendarEvent{
			ID:    application.JobID,
			Title: fmt.Sprintf("%s at %s", application.JobTitle, application.Company),
			Start: application.ApplicationDate,
			End:   application.ApplicationDate,
			Type:  model.CalendarEventApplication,
			Details: map[string]string{
				"company":   application.Company,
				"sourceUrl": application.SourceURL,
				"jobTitle":  application.JobTitle,
				"status":    string(application.Status),
			},
		})
	}

	return events, nil
}

// daysBetween rounds up, so anything due later today counts as one day away.
func daysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
