package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/suweldo/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo/suweldo-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, event holiday.CalendarEvent) (holiday.CalendarEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, name, date, type, multiplier)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		event.ID, event.Name, event.Date, event.Type, event.Multiplier,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_holidays_date") {
			return holiday.CalendarEvent{}, holiday.ErrDuplicateEvent
		}
		return holiday.CalendarEvent{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return event, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrEventNotFound
	}
	return nil
}

// MapByRange implements holiday.HolidayRepository.
func (r *holidayRepository) MapByRange(ctx context.Context, from, to time.Time) (map[string]holiday.CalendarEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, date, type, multiplier, created_at, updated_at
		FROM holidays
		WHERE date >= $1 AND date < $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	events := make(map[string]holiday.CalendarEvent)
	for rows.Next() {
		var event holiday.CalendarEvent
		if err := rows.Scan(
			&event.ID, &event.Name, &event.Date, &event.Type, &event.Multiplier,
			&event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		events[holiday.DateKey(event.Date)] = event
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return events, nil
}
