// Package datedim derives calendar attributes for the date dimension.
// This is part of the Functional Core - no I/O, only pure functions.
package datedim

import (
	"fmt"
	"time"

	"github.com/example/ticketmart/internal/models"
)

// FromKey expands a YYYYMMDD surrogate key into a full date dimension row.
// Keys that do not decompose into a real calendar date are rejected, so a
// dimension row is either complete and consistent or never written.
func FromKey(key int) (models.DateRow, error) {
	if key <= 0 {
		return models.DateRow{}, fmt.Errorf("invalid date key %d", key)
	}
	year := key / 10000
	month := key / 100 % 100
	day := key % 100

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return models.DateRow{}, fmt.Errorf("invalid date key %d", key)
	}

	_, week := t.ISOWeek()
	weekday := (int(t.Weekday()) + 6) % 7 // Monday = 0

	return models.DateRow{
		ID:         key,
		FullDate:   t.Format("2006-01-02"),
		Year:       year,
		Quarter:    (month-1)/3 + 1,
		Month:      month,
		MonthName:  t.Month().String(),
		WeekOfYear: week,
		DayOfMonth: day,
		DayOfWeek:  weekday,
		DayName:    t.Weekday().String(),
		Weekend:    weekday >= 5,
	}, nil
}
