package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"skillcompass/internal/indexer"
)

var ErrRebuildInProgress = errors.New("index rebuild already in progress")

const (
	rebuildLockKey = "index:rebuild:lock"
	rebuildLockTTL = 5 * time.Minute
)

type IndexRebuildResult struct {
	RoleCount int `json:"role_count"`
}

type IndexUsecase interface {
	RebuildIndex(ctx context.Context) (IndexRebuildResult, error)
}

// RecommendationInvalidator drops cached recommendations that may reference
// roles removed by a rebuild.
type RecommendationInvalidator interface {
	InvalidateRecommendations(ctx context.Context) error
}

type IndexAdmin struct {
	builder     *indexer.Builder
	cache       SearchCache
	invalidator RecommendationInvalidator
	logger      *log.Logger
}

func NewIndexUsecase(
	builder *indexer.Builder,
	cache SearchCache,
	invalidator RecommendationInvalidator,
	logger *log.Logger,
) *IndexAdmin {
	return &IndexAdmin{
		builder:     builder,
		cache:       cache,
		invalidator: invalidator,
		logger:      logger,
	}
}

// RebuildIndex serializes rebuilds behind a cache lock. Concurrent requests
// get ErrRebuildInProgress instead of racing on the snapshot files.
func (u *IndexAdmin) RebuildIndex(ctx context.Context) (IndexRebuildResult, error) {
	if u.cache != nil {
		acquired, err := u.cache.SetIfNotExists(ctx, rebuildLockKey, "1", rebuildLockTTL)
		if err == nil && !acquired {
			return IndexRebuildResult{}, ErrRebuildInProgress
		}
		defer func() {
			if err := u.cache.Delete(ctx, rebuildLockKey); err != nil && u.logger != nil {
				u.logger.Printf("rebuild lock release failed | error=%v", err)
			}
		}()
	}

	n, err := u.builder.Build(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("index rebuild failed | error=%v", err)
		}
		return IndexRebuildResult{}, ErrInternal
	}

	if u.invalidator != nil {
		if err := u.invalidator.InvalidateRecommendations(ctx); err != nil && u.logger != nil {
			u.logger.Printf("recommendation cache invalidation failed | error=%v", err)
		}
	}

	return IndexRebuildResult{RoleCount: n}, nil
}
