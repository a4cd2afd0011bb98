package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/idanidan29/tripbooker/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

// TripCache is a redis-backed read cache for trip details (availability
// display). A nil client disables the cache: every read is a miss and
// writes are dropped, so the service keeps working without redis.
type TripCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewTripCache(client *redis.Client, ttl time.Duration, log logger.Logger) *TripCache {
	if client == nil {
		log.Warn("redis client is nil, trip cache disabled")
	}
	return &TripCache{client: client, ttl: ttl, logger: log}
}

func key(tripID string) string {
	return "trip:details:" + tripID
}

func (c *TripCache) GetTripDetails(ctx context.Context, tripID string) (*domain.TripDetails, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(tripID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("trip cache read failed",
				logger.String("trip_id", tripID),
				logger.String("error", err.Error()),
			)
		}
		return nil, false
	}

	var details domain.TripDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, false
	}

	return &details, true
}

func (c *TripCache) SetTripDetails(ctx context.Context, details *domain.TripDetails) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key(details.Trip.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("trip cache write failed",
			logger.String("trip_id", details.Trip.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (c *TripCache) Invalidate(ctx context.Context, tripID string) {
	if c.client == nil {
		return
	}

	if err := c.client.Del(ctx, key(tripID)).Err(); err != nil {
		c.logger.Debug("trip cache invalidate failed",
			logger.String("trip_id", tripID),
			logger.String("error", err.Error()),
		)
	}
}
