package cache

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
)

type userStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// PrincipalLookup resolves the bearer token subject to a user, reading through the cache.
// Cache failures are logged and the store is used instead.
type PrincipalLookup struct {
	store userStore
	cache PrincipalCache
}

func NewPrincipalLookup(store userStore, cache PrincipalCache) *PrincipalLookup {
	return &PrincipalLookup{store: store, cache: cache}
}

func (p *PrincipalLookup) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {

	logger := middleware.LoggerFromContext(ctx)

	cached, found, err := p.cache.Get(ctx, email)
	if err != nil {
		logger.Warn("Principal cache read failed", slog.String("email", email), slog.Any("error", err))
	}

	if found {
		return cached, nil
	}

	user, err := p.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := p.cache.Put(ctx, user); err != nil {
		logger.Warn("Principal cache write failed", slog.String("email", email), slog.Any("error", err))
	}

	return user, nil
}
