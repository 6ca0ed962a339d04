package models

import "time"

type Post struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	Image       string    `json:"image,omitempty"`
	AuthorID    int       `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID  *int      `gorm:"index" json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	LocationID  *int      `json:"location_id,omitempty"`
	Location    *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	PubDate     time.Time `gorm:"index;not null" json:"pub_date"`
	IsPublished bool      `gorm:"default:true" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Filled by the listing query, not a column.
	CommentCount int64 `gorm:"->;-:migration" json:"comment_count"`
}

type CreatePostRequest struct {
	Title      string     `json:"title" binding:"required"`
	Text       string     `json:"text" binding:"required"`
	Image      string     `json:"image"`
	CategoryID *int       `json:"category_id"`
	LocationID *int       `json:"location_id"`
	PubDate    *time.Time `json:"pub_date"`
}
