// Package models contains data structures for the application's domain models.
package models

import "time"

// Relationship is a directed follow edge: the follower follows the followed
// user. The composite unique index keeps the edge single per (follower,
// followed) pair; a duplicate insert surfaces as a conflict rather than a
// second edge.
type Relationship struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_relationships_pair" json:"follower_id"`
	FollowedID uint      `gorm:"not null;index;uniqueIndex:idx_relationships_pair" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followed User `gorm:"foreignKey:FollowedID" json:"followed,omitempty"`
}

// TableName specifies the table name for GORM
func (Relationship) TableName() string {
	return "relationships"
}
