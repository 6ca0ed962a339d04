package models

import "time"

// Location is an optional geographic tag on a post. It carries a publication
// flag for the admin surface but does not affect post visibility.
type Location struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
}
