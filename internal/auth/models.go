package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leandrocorretor/realty/pkg/models"
)

// GoogleLoginRequest carries the ID token returned by Google Identity Services
type GoogleLoginRequest struct {
	Credential string `json:"credential" form:"credential" validate:"required,max=4096"`
}

// Identity is the verified profile extracted from an ID token
type Identity struct {
	Email         string
	EmailVerified bool
	Name          string
	Picture       string
}

// AuthorizedUser is an e-mail allowed into the back office
type AuthorizedUser struct {
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Seeded      bool       `json:"seeded"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// Claims are the session JWT claims
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// Session is an issued back-office session
type Session struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     *models.Admin `json:"admin"`
}
