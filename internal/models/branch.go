package models

import "time"

// Branch is a sub-location label for shop users with more than one site.
// Rows are created lazily the first time a record arrives with a new
// branch name; house users never have any.
type Branch struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_branches_user_name;not null"`
	Name      string `gorm:"size:100;uniqueIndex:idx_branches_user_name;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
