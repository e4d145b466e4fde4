package dto

import (
	"time"

	"github.com/amirhossein-jamali/rewards-pool/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-pool/internal/domain/port/usecase"
)

// SignUpRequest represents the email/password signup form
type SignUpRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	FullName     string `json:"fullName"`
	Username     string `json:"username" binding:"required"`
	Country      string `json:"country"`
	ReferralCode string `json:"referralCode"`
}

// LoginRequest represents an email/password sign in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// FederatedLoginRequest carries the assertion issued by the federated identity provider
type FederatedLoginRequest struct {
	Assertion string `json:"assertion" binding:"required"`
}

// OnboardingRequest represents the form completed after the first federated sign in
type OnboardingRequest struct {
	Username     string `json:"username" binding:"required"`
	Country      string `json:"country"`
	ReferralCode string `json:"referralCode"`
}

// AccessResponse is the outcome of an access check
type AccessResponse struct {
	Decision string `json:"decision"`
	Target   string `json:"target,omitempty"`
}

// AuthResponse is returned by every sign in path
type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	UserID    string         `json:"userId"`
	Access    AccessResponse `json:"access"`
	User      *UserResponse  `json:"user,omitempty"`
}

// UserResponse is the public part of a user record
type UserResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	Country      string `json:"country,omitempty"`
	Role         string `json:"role"`
	ReferralCode string `json:"referralCode"`
}

// NewAccessResponse maps an access decision
func NewAccessResponse(d entity.AccessDecision) AccessResponse {
	return AccessResponse{Decision: string(d.Kind), Target: string(d.Target)}
}

// NewUserResponse maps a user record
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		Country:      u.Country,
		Role:         string(u.Role),
		ReferralCode: u.ReferralCode,
	}
}

// NewAuthResponse maps a sign in result
func NewAuthResponse(r *usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Session.Token,
		ExpiresAt: r.Session.ExpiresAt,
		UserID:    r.Session.UserID,
		Access:    NewAccessResponse(r.Decision),
		User:      NewUserResponse(r.User),
	}
}
