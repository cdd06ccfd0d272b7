package models

import "time"

const PeriodTypeDaily = "daily"

// EnergyRecord is one consumption reading. Immutable after creation,
// ordered by Date (not insertion). Date is stored as "YYYY-MM-DD" so
// lexicographic order matches calendar order.
type EnergyRecord struct {
	ID          uint    `gorm:"primaryKey"`
	UserID      uint    `gorm:"index;not null"`
	Date        string  `gorm:"size:10;index;not null"`
	KWhConsumed float64 `gorm:"not null"`
	BranchName  string  `gorm:"size:100;index"` // empty = overall / no branch
	PeriodType  string  `gorm:"size:20;not null;default:daily"`
	CreatedAt   time.Time
}
