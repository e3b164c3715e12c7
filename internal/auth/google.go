package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

// ErrInvalidCredential is returned for ID tokens that fail verification
var ErrInvalidCredential = errors.New("invalid google credential")

// GoogleVerifier checks ID tokens against Google's signing keys
type GoogleVerifier struct {
	validator *idtoken.Validator
	clientID  string
}

// NewGoogleVerifier creates a verifier for the given OAuth client ID
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	v, err := idtoken.NewValidator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create id token validator: %w", err)
	}
	return &GoogleVerifier{validator: v, clientID: clientID}, nil
}

// Verify validates signature, audience and expiry and returns the profile claims
func (g *GoogleVerifier) Verify(ctx context.Context, credential string) (*Identity, error) {
	payload, err := g.validator.Validate(ctx, credential, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	return identityFromClaims(payload.Claims)
}

func identityFromClaims(claims map[string]interface{}) (*Identity, error) {
	id := &Identity{
		Email:   strings.ToLower(strings.TrimSpace(stringClaim(claims, "email"))),
		Name:    stringClaim(claims, "name"),
		Picture: stringClaim(claims, "picture"),
	}
	switch v := claims["email_verified"].(type) {
	case bool:
		id.EmailVerified = v
	case string:
		id.EmailVerified = v == "true"
	}
	if id.Email == "" {
		return nil, fmt.Errorf("%w: token has no email", ErrInvalidCredential)
	}
	if id.Name == "" {
		id.Name = id.Email
	}
	return id, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	s, _ := claims[key].(string)
	return s
}
