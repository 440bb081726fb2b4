package cache

import (
	"context"
	"strings"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
)

const keyNamespace = "apparel"

// PrincipalCache holds the users resolved from bearer token subjects. Entries
// never include the password hash.
type PrincipalCache interface {
	Get(ctx context.Context, email string) (*models.User, bool, error)
	Put(ctx context.Context, user *models.User) error
}

// PrincipalKey is case-insensitive in the email.
func PrincipalKey(email string) string {
	return keyNamespace + ":principal:" + strings.ToLower(strings.TrimSpace(email))
}
