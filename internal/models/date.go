package models

// DateRow is one calendar-date dimension row. ID is the YYYYMMDD surrogate
// key, DayOfWeek is zero-based starting Monday, and WeekOfYear follows the
// ISO-8601 week numbering.
type DateRow struct {
	ID         int
	FullDate   string
	Year       int
	Quarter    int
	Month      int
	MonthName  string
	WeekOfYear int
	DayOfMonth int
	DayOfWeek  int
	DayName    string
	Weekend    bool
}
