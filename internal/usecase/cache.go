package usecase

import (
	"context"
	"encoding/json"

	"travel_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const travelPackageCachePrefix = "travel-packages:"

// readCached decodes a cached JSON value. Any cache or decode error is a miss.
func readCached[T any](ctx context.Context, cache interfaces.ICache, logger *zap.Logger, key string) (T, bool) {
	var out T
	if cache == nil {
		return out, false
	}
	raw, ok, err := cache.Get(ctx, key)
	if err != nil {
		logger.Warn("[cache][usecase] get failed", zap.String("key", key), zap.Error(err))
		return out, false
	}
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn("[cache][usecase] decode failed", zap.String("key", key), zap.Error(err))
		return out, false
	}
	return out, true
}

func writeCached(ctx context.Context, cache interfaces.ICache, logger *zap.Logger, key string, value any) {
	if cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("[cache][usecase] encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := cache.Set(ctx, key, raw); err != nil {
		logger.Warn("[cache][usecase] set failed", zap.String("key", key), zap.Error(err))
	}
}

func invalidateCached(ctx context.Context, cache interfaces.ICache, logger *zap.Logger, prefix string) {
	if cache == nil {
		return
	}
	if err := cache.DeleteByPrefix(ctx, prefix); err != nil {
		logger.Warn("[cache][usecase] invalidate failed", zap.String("prefix", prefix), zap.Error(err))
	}
}
