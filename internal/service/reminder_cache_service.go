package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fleet-maintenance/internal/reminder"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// reminderProjectionsKey holds the last full projection pass. A short
	// TTL keeps status classification close to real time while shielding
	// the database from repeated full expansions.
	reminderProjectionsKey = "reminder:projections"
	reminderProjectionsTTL = 60 * time.Second
)

// ReminderCacheService caches computed reminder projections in Redis.
// Mutations to vehicles, programs, schedules or tasks must invalidate the
// cache so the next projection pass sees the new configuration.
type ReminderCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewReminderCacheService(redisClient *redis.Client, log *logrus.Logger) *ReminderCacheService {
	return &ReminderCacheService{
		redisClient: redisClient,
		log:         log,
	}
}

// GetProjections returns the cached projection pass, or (nil, false) on a
// cache miss. Redis errors are treated as misses so the caller falls back
// to a fresh computation.
func (s *ReminderCacheService) GetProjections(ctx context.Context) ([]reminder.Projection, bool) {
	payload, err := s.redisClient.Get(ctx, reminderProjectionsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warnf("Failed to read projection cache: %+v", err)
		}
		return nil, false
	}

	var projections []reminder.Projection
	if err := json.Unmarshal(payload, &projections); err != nil {
		s.log.Warnf("Failed to decode projection cache, dropping it: %+v", err)
		s.Invalidate(ctx)
		return nil, false
	}

	return projections, true
}

// SetProjections stores a projection pass. Failures are logged and
// swallowed; the cache is an optimization, never a source of truth.
func (s *ReminderCacheService) SetProjections(ctx context.Context, projections []reminder.Projection) {
	payload, err := json.Marshal(projections)
	if err != nil {
		s.log.Warnf("Failed to encode projections for cache: %+v", err)
		return
	}

	if err := s.redisClient.Set(ctx, reminderProjectionsKey, payload, reminderProjectionsTTL).Err(); err != nil {
		s.log.Warnf("Failed to write projection cache: %+v", err)
	}
}

// Invalidate drops the cached projection pass
func (s *ReminderCacheService) Invalidate(ctx context.Context) {
	if err := s.redisClient.Del(ctx, reminderProjectionsKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate projection cache: %+v", err)
	}
}
