// Package models contains data structures for the application's domain models.
package models

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// User represents a registered account in Katalog Miniatur.
//
// Email is stored lower-cased so the unique index enforces case-insensitive
// uniqueness. PasswordDigest holds the bcrypt hash; the raw password is never
// persisted. Admin is deliberately absent from every request DTO and can only
// be changed through UserService.SetAdmin.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordDigest string    `gorm:"not null" json:"-"`
	RememberToken  string    `gorm:"index" json:"-"`
	Admin          bool      `gorm:"not null;default:false" json:"admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Microposts []Micropost `gorm:"foreignKey:UserID" json:"microposts,omitempty"`
}

// BeforeSave rotates the remember token on every persisted save, create and
// update alike. Callers holding the previous token must re-read it after any
// save.
func (u *User) BeforeSave(_ *gorm.DB) error {
	token, err := NewRememberToken()
	if err != nil {
		return err
	}
	u.RememberToken = token
	return nil
}

// NewRememberToken returns a fresh URL-safe random token.
func NewRememberToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate remember token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
