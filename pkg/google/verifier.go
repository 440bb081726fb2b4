package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/idtoken"
)

var (
	ErrEmailNotVerified = errors.New("google account email is not verified")
	ErrMissingEmail     = errors.New("google token carries no email")
)

// Identity is the subset of Google ID-token claims used to sign a user in.
type Identity struct {
	Email      string
	Name       string
	GivenName  string
	FamilyName string
	PictureURL string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type validateFunc func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

type Verifier struct {
	clientID string
	validate validateFunc
}

func NewVerifier(clientID string) *Verifier {
	return &Verifier{clientID: clientID, validate: idtoken.Validate}
}

// Verify checks the token signature, audience and expiry against Google's keys and
// returns the identity only for a verified email.
func (v *Verifier) Verify(ctx context.Context, token string) (*Identity, error) {

	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("validating google id token: %w", err)
	}

	email := claimString(payload.Claims, "email")
	if email == "" {
		return nil, ErrMissingEmail
	}

	if !claimTrue(payload.Claims, "email_verified") {
		return nil, ErrEmailNotVerified
	}

	return &Identity{
		Email:      strings.ToLower(email),
		Name:       claimString(payload.Claims, "name"),
		GivenName:  claimString(payload.Claims, "given_name"),
		FamilyName: claimString(payload.Claims, "family_name"),
		PictureURL: claimString(payload.Claims, "picture"),
	}, nil
}

func claimString(claims map[string]any, key string) string {
	value, _ := claims[key].(string)
	return value
}

// email_verified arrives as a bool from the token endpoint and as a string from some older clients.
func claimTrue(claims map[string]any, key string) bool {
	switch value := claims[key].(type) {
	case bool:
		return value
	case string:
		return strings.EqualFold(value, "true")
	default:
		return false
	}
}
