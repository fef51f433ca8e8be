package forms

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
)

// CachedStore keeps form definitions in Redis in front of another Store.
// Scoring reads the form on every response edit and review action, while forms change rarely.
// A nil Redis client turns the cache off.
type CachedStore struct {
	next Store
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedStore(next Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{next: next, rdb: rdb, ttl: ttl}
}

func cacheKey(id primitive.ObjectID) string {
	return "form:" + id.Hex()
}

func (c *CachedStore) Create(ctx context.Context, form *models.Form) error {
	return c.next.Create(ctx, form)
}

func (c *CachedStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	if c.rdb == nil {
		return c.next.Get(ctx, id)
	}

	raw, err := c.rdb.Get(ctx, cacheKey(id)).Bytes()
	switch {
	case err == nil:
		var form models.Form
		if jsonErr := json.Unmarshal(raw, &form); jsonErr == nil {
			return &form, nil
		}
		log.Printf("[forms] dropping unreadable cache entry %s", cacheKey(id))
	case !errors.Is(err, redis.Nil):
		log.Printf("[forms] cache read failed for %s: %v", cacheKey(id), err)
	}

	form, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(form); err == nil {
		if err := c.rdb.Set(ctx, cacheKey(id), data, c.ttl).Err(); err != nil {
			log.Printf("[forms] cache write failed for %s: %v", cacheKey(id), err)
		}
	}
	return form, nil
}

func (c *CachedStore) UpdateFieldWeight(ctx context.Context, id primitive.ObjectID, fieldID string, weight int) error {
	if err := c.next.UpdateFieldWeight(ctx, id, fieldID, weight); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachedStore) invalidate(ctx context.Context, id primitive.ObjectID) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKey(id)).Err(); err != nil {
		log.Printf("[forms] cache invalidation failed for %s: %v", cacheKey(id), err)
	}
}
