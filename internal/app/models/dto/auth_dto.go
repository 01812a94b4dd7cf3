package dto

import (
	"time"

	"github.com/yigit/jobsearch/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn" example:"300"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty" example:"86400"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// APITokenResponse carries the persistent API token.
type APITokenResponse struct {
	Token string `json:"token" example:"9944b09199c62bcf9418ad846dd0e4bbdfc6ee4b"`
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,max=255" example:"jane@example.com"`
	Password  string `json:"password" binding:"required,min=8,max=128" example:"s3cret-pass"`
	FirstName string `json:"firstName" binding:"max=150" example:"Jane"`
	LastName  string `json:"lastName" binding:"max=150" example:"Doe"`
}

// UpdateProfileRequest is a partial update of the current user; nil fields are untouched.
type UpdateProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email,max=255"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=128"`
	FirstName *string `json:"firstName" binding:"omitempty,max=150"`
	LastName  *string `json:"lastName" binding:"omitempty,max=150"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID        int64     `json:"id" example:"1"`
	Email     string    `json:"email" example:"jane@example.com"`
	FirstName string    `json:"firstName" example:"Jane"`
	LastName  string    `json:"lastName" example:"Doe"`
	IsStaff   bool      `json:"isStaff" example:"false"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a user model without its password hash.
func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}

// MissingForFullUpdate lists the JSON names of fields a PUT must carry.
func (r *UpdateProfileRequest) MissingForFullUpdate() []string {
	var missing []string
	if r.Email == nil {
		missing = append(missing, "email")
	}
	if r.Password == nil {
		missing = append(missing, "password")
	}
	return missing
}
