package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/config"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	fieldID        = "id"
	fieldFirstName = "firstName"
	fieldLastName  = "lastName"
	fieldEmail     = "email"
	fieldRole      = "role"
)

// redisPrincipalCache stores each principal as a hash so the fields stay readable
// from redis-cli; the whole hash expires after the configured TTL.
type redisPrincipalCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPrincipalCache(client *redis.Client, cfg *config.CacheConfig) PrincipalCache {
	return &redisPrincipalCache{client: client, ttl: cfg.DefaultTTL}
}

func (r *redisPrincipalCache) Get(ctx context.Context, email string) (*models.User, bool, error) {

	key := PrincipalKey(email)

	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read principal %s from redis: %w", key, err)
	}

	if len(fields) == 0 {
		return nil, false, nil
	}

	id, err := strconv.ParseInt(fields[fieldID], 10, 64)
	if err != nil {
		return nil, false, fmt.Errorf("corrupt principal entry %s: %w", key, err)
	}

	return &models.User{
		ID:        id,
		FirstName: fields[fieldFirstName],
		LastName:  fields[fieldLastName],
		Email:     fields[fieldEmail],
		Role:      models.Role(fields[fieldRole]),
	}, true, nil
}

func (r *redisPrincipalCache) Put(ctx context.Context, user *models.User) error {

	key := PrincipalKey(user.Email)

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldID, strconv.FormatInt(user.ID, 10),
		fieldFirstName, user.FirstName,
		fieldLastName, user.LastName,
		fieldEmail, user.Email,
		fieldRole, string(user.Role),
	)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write principal %s to redis: %w", key, err)
	}

	return nil
}
