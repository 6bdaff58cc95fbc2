// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package bookmark

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/haminhduc/linkmark/internal/platform/constants"
	"github.com/haminhduc/linkmark/internal/platform/ctxutil"
)

// CachedStore decorates a [Store] with a Redis cache for collection
// totals.
//
// # Rationale
//
// Every paginated response needs the filtered COUNT(*) to build its
// Total header and last-page link, which makes the count the hottest and
// most expensive query of the list path. Totals are cached per filter for
// [constants.BookmarkCountTTL]; writes invalidate the unfiltered total
// immediately, filtered variants ride out the TTL.
//
// # Degradation
//
// Cache failures are logged and bypassed. Redis being down slows listing
// down, it never breaks it.
type CachedStore struct {
	Store
	cache *redis.Client
}

// NewCachedStore wraps inner with count caching.
func NewCachedStore(inner Store, cache *redis.Client) *CachedStore {
	return &CachedStore{Store: inner, cache: cache}
}

// Count serves the filtered total from Redis when fresh, falling back to
// the inner store and caching the result.
func (store *CachedStore) Count(ctx context.Context, filter Filter) (int, error) {
	key := countKey(filter)

	cached, err := store.cache.Get(ctx, key).Result()
	if err == nil {
		if total, parseErr := strconv.Atoi(cached); parseErr == nil {
			return total, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		ctxutil.GetLogger(ctx).Warn("bookmark_count_cache_read_failed", slog.Any("error", err))
	}

	total, err := store.Store.Count(ctx, filter)
	if err != nil {
		return 0, err
	}

	if err := store.cache.Set(ctx, key, strconv.Itoa(total), constants.BookmarkCountTTL).Err(); err != nil {
		ctxutil.GetLogger(ctx).Warn("bookmark_count_cache_write_failed", slog.Any("error", err))
	}

	return total, nil
}

// Create writes through to the inner store and invalidates the unfiltered
// total.
func (store *CachedStore) Create(ctx context.Context, bookmark *Bookmark) error {
	if err := store.Store.Create(ctx, bookmark); err != nil {
		return err
	}
	store.invalidate(ctx)
	return nil
}

// Delete writes through to the inner store and invalidates the unfiltered
// total.
func (store *CachedStore) Delete(ctx context.Context, id string) error {
	if err := store.Store.Delete(ctx, id); err != nil {
		return err
	}
	store.invalidate(ctx)
	return nil
}

// invalidate drops the unfiltered total after a successful write.
func (store *CachedStore) invalidate(ctx context.Context) {
	if err := store.cache.Del(ctx, countKey(Filter{})).Err(); err != nil {
		ctxutil.GetLogger(ctx).Warn("bookmark_count_cache_invalidate_failed", slog.Any("error", err))
	}
}

// countKey derives a stable cache key from the filter.
func countKey(filter Filter) string {
	var key strings.Builder
	key.WriteString(constants.RedisPrefixBookmarkCount)
	key.WriteString(strings.Join(filter.Tags, ","))
	key.WriteByte('|')
	key.WriteString(filter.Search)
	return key.String()
}
