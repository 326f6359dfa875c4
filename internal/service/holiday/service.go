package holiday

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
)

// Service manages the company holiday calendar.
type Service struct {
	repo holiday.HolidayRepository
	loc  *time.Location
}

func NewService(repo holiday.HolidayRepository, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc}
}

func (s *Service) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.CalendarEvent, error) {
	if err := req.Validate(); err != nil {
		return holiday.CalendarEvent{}, err
	}

	date, _ := time.ParseInLocation("2006-01-02", req.Date, s.loc)
	event := holiday.CalendarEvent{
		ID:   uuid.New().String(),
		Name: req.Name,
		Date: date,
		Type: holiday.HolidayType(req.Type),
	}
	if req.Multiplier != nil {
		event.Multiplier = *req.Multiplier
	} else {
		event.Multiplier = decimal.Zero
	}

	return s.repo.Create(ctx, event)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ListByRange returns the events with date in [from, to], ordered by date.
func (s *Service) ListByRange(ctx context.Context, from, to time.Time) ([]holiday.CalendarEvent, error) {
	byDate, err := s.repo.MapByRange(ctx, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	events := make([]holiday.CalendarEvent, 0, len(byDate))
	for _, event := range byDate {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events, nil
}

// ToResponse converts an entity to its wire shape.
func ToResponse(event holiday.CalendarEvent) holiday.HolidayResponse {
	resp := holiday.HolidayResponse{
		ID:   event.ID,
		Name: event.Name,
		Date: event.Date.Format("2006-01-02"),
		Type: string(event.Type),
	}
	if event.Multiplier.Sign() > 0 {
		resp.Multiplier = event.Multiplier.String()
	}
	return resp
}
