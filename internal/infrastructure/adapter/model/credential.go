package model

import (
	"time"
)

// Credential stores email/password sign-in data for the built-in identity provider
type Credential struct {
	UserID       string    `gorm:"primaryKey;size:128"`
	Email        string    `gorm:"size:320;not null;uniqueIndex:idx_credentials_email"`
	PasswordHash string    `gorm:"size:255;not null"`
	DisplayName  string    `gorm:"size:255"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Credential
func (Credential) TableName() string {
	return "credentials"
}

// RevokedSession blacklists a session token until it would have expired anyway
type RevokedSession struct {
	TokenID   string    `gorm:"primaryKey;size:64"`
	UserID    string    `gorm:"size:128;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for RevokedSession
func (RevokedSession) TableName() string {
	return "revoked_sessions"
}
