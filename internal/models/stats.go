package models

// TableCount is a row-count sample for one warehouse table. Available is
// false when the table does not exist yet, in which case Count is zero.
type TableCount struct {
	Table     string
	Label     string
	Count     int64
	Available bool
}
