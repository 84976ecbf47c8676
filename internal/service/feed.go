package service

import (
	"context"
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

// FeedService renders the combined calendar as an iCalendar feed that
// external calendar clients can subscribe to
type FeedService struct {
	calendarService CalendarServiceInterface
}

// NewFeedService creates a new feed service
func NewFeedService(calendarService CalendarServiceInterface) *FeedService {
	return &FeedService{calendarService: calendarService}
}

// ICSFeed aggregates the combined calendar for the given parameters and
// serializes it as an iCalendar document. Sources that failed during
// aggregation are simply absent from the feed, mirroring the combined
// endpoint's partial-result behavior.
func (s *FeedService) ICSFeed(ctx context.Context, params CombinedParams) (string, error) {
	result, err := s.calendarService.Combined(ctx, params)
	if err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//dispatch-portal//calendar-feed//EN")

	now := time.Now().UTC()
	for _, event := range result.Events {
		entry := cal.AddEvent(fmt.Sprintf("%s@dispatch-portal", event.ID))
		entry.SetDtStampTime(now)
		entry.SetSummary(event.Title)
		if event.AllDay {
			entry.SetAllDayStartAt(event.Start)
			entry.SetAllDayEndAt(event.End)
		} else {
			entry.SetStartAt(event.Start)
			entry.SetEndAt(event.End)
		}

		description := fmt.Sprintf("Source: %s", event.Source)
		if event.WorkerName != "" {
			description += fmt.Sprintf("\nWorker: %s", event.WorkerName)
		}
		if event.Status != "" {
			description += fmt.Sprintf("\nStatus: %s", event.Status)
		}
		entry.SetDescription(description)

		if address, ok := event.Details["address"].(string); ok && address != "" {
			entry.SetLocation(address)
		}
	}

	return cal.Serialize(), nil
}
