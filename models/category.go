package models

import "time"

// Category names are unique case-insensitively; the controller checks with
// LOWER(name) before insert since the DB unique index is case-sensitive.
type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
