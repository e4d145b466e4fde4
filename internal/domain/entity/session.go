package entity

import "time"

// Session is an authenticated identity resolved from a session token
type Session struct {
	UserID      string
	Email       string
	DisplayName string // Provided by federated sign-in, may be empty
	Token       string
	ExpiresAt   time.Time
}

// StagedProfile holds the fields captured at federated sign-in until onboarding completes
type StagedProfile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// DefaultFullName is used when neither the staged profile nor the session carries a name
const DefaultFullName = "Unnamed User"
