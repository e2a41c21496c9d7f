package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"rentacar/shared/cache"
	"rentacar/shared/constant"
	"rentacar/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and the parts into a single key, e.g. "car:count:available".
func BuildCacheKey(prefix string, parts ...any) string {
	key := []string{prefix}
	for _, part := range parts {
		key = append(key, fmt.Sprint(part))
	}

	return strings.Join(key, cacheKeySeparator)
}

// BuildCacheKeyWithQuery suffixes the prefix with a digest of the JSON encoding of the parts.
// Equal criteria always produce the same key.
func BuildCacheKeyWithQuery(prefix string, parts ...any) string {
	raw, err := json.Marshal(parts)
	if err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to marshal cache key parts")

		return BuildCacheKey(prefix, parts...)
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key that starts with prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
