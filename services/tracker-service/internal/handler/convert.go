package handler

import (
	"github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/internal/model"
	trackertypes "github.com/vasapolrittideah/opportunity-tracker-api/services/tracker-service/pkg/types"
)

func toUser(u *model.User) trackertypes.User {
	return trackertypes.User{
		ID:             u.ID.Hex(),
		Username:       u.Username,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
		LastLoginAt:    u.LastLoginAt,
		CreatedAt:      u.CreatedAt,
	}
}

func toInterests(items []model.Interest) []trackertypes.Interest {
	out := make([]trackertypes.Interest, 0, len(items))
	for _, i := range items {
		out = append(out, trackertypes.Interest{
			OpportunityID:   i.OpportunityID,
			OpportunityType: string(i.OpportunityType),
			OpportunityName: i.OpportunityName,
			Platform:        i.Platform,
			Link:            i.Link,
			Deadline:        i.Deadline,
			AddedAt:         i.AddedAt,
		})
	}

	return out
}

func toJobApplication(a *model.JobApplication) trackertypes.JobApplication {
	return trackertypes.JobApplication{
		JobID:           a.JobID,
		JobTitle:        a.JobTitle,
		Company:         a.Company,
		ApplicationDate: a.ApplicationDate,
		Notes:           a.Notes,
		Status:          string(a.Status),
		SourceURL:       a.SourceURL,
		AddedAt:         a.AddedAt,
	}
}

func toJobApplications(items []model.JobApplication) []trackertypes.JobApplication {
	out := make([]trackertypes.JobApplication, 0, len(items))
	for i := range items {
		out = append(out, toJobApplication(&items[i]))
	}

	return out
}

func toOpportunities(items []model.Opportunity) []trackertypes.Opportunity {
	out := make([]trackertypes.Opportunity, 0, len(items))
	for _, o := range items {
		out = append(out, trackertypes.Opportunity(o))
	}

	return out
}

func toCalendarEvents(items []model.CalendarEvent) []trackertypes.CalendarEvent {
	out := make([]trackertypes.CalendarEvent, 0, len(items))
	for _, e := range items {
		out = append(out, trackertypes.CalendarEvent{
			ID:        e.ID,
			Title:     e.Title,
			Start:     e.Start,
			End:       e.End,
			Type:      string(e.Type),
			Details:   e.Details,
			DaysUntil: e.DaysUntil,
		})
	}

	return out
}
