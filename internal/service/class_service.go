package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/classtrack/attendance-backend/internal/config"
	"github.com/classtrack/attendance-backend/internal/repository"
)

// ClassService serves the distinct class labels used to populate filter
// dropdowns. The list changes only on roster writes, so it is cached in
// Redis with a short TTL and invalidated on every mutation. Nothing else
// reads through this cache; ledger queries always hit the database.
type ClassService struct {
	studentRepo *repository.StudentRepository
	rdb         *redis.Client
	cfg         *config.Config
	log         zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(studentRepo *repository.StudentRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *ClassService {
	return &ClassService{
		studentRepo: studentRepo,
		rdb:         rdb,
		cfg:         cfg,
		log:         log.With().Str("component", "class_service").Logger(),
	}
}

// List returns the distinct class labels on the roster, cache-first.
func (s *ClassService) List(ctx context.Context) ([]string, error) {
	if cached, err := s.rdb.Get(ctx, config.ClassListCacheKey).Result(); err == nil {
		var classes []string
		if err := json.Unmarshal([]byte(cached), &classes); err == nil {
			return classes, nil
		}
		// Corrupt cache entry: fall through to the database.
		s.rdb.Del(ctx, config.ClassListCacheKey)
	}

	classes, err := s.studentRepo.DistinctClasses(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(classes); err == nil {
		if err := s.rdb.Set(ctx, config.ClassListCacheKey, payload, s.cfg.ClassCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache class list")
		}
	}
	return classes, nil
}

// Invalidate drops the cached list. Called after any roster write.
func (s *ClassService) Invalidate(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.ClassListCacheKey).Err(); err != nil {
		s.log.Warn().Err(err).Msg("failed to invalidate class list cache")
	}
}
