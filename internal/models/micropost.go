// Package models contains data structures for the application's domain models.
package models

import "time"

// Micropost is a short post owned by exactly one user.
type Micropost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:varchar(140);not null" json:"content"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
