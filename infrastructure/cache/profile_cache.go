// infrastructure/cache/profile_cache.go
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/port"
)

const (
	profileKeyPrefix = "profile:"
	profileTTL       = 5 * time.Minute
)

type profileCache struct {
	client *redis.Client
}

// NewProfileCache สร้าง cache สำหรับ profile summary บน Redis
func NewProfileCache(client *redis.Client) port.ProfileCachePort {
	return &profileCache{client: client}
}

// GetMany อ่าน summary จาก cache คืน map ของที่พบและ slice ของ id ที่พลาด
func (c *profileCache) GetMany(ids []uuid.UUID) (map[uuid.UUID]dto.UserSummary, []uuid.UUID) {
	found := make(map[uuid.UUID]dto.UserSummary)
	if len(ids) == 0 {
		return found, nil
	}

	ctx := context.Background()
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = profileKeyPrefix + id.String()
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		// cache ล่มไม่ทำให้ request พัง แค่ตกไปอ่านฐานข้อมูลทั้งชุด
		return found, ids
	}

	var missing []uuid.UUID
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		var summary dto.UserSummary
		if err := json.Unmarshal([]byte(raw), &summary); err != nil {
			missing = append(missing, ids[i])
			continue
		}
		found[ids[i]] = summary
	}
	return found, missing
}

func (c *profileCache) SetMany(summaries map[uuid.UUID]dto.UserSummary) {
	if len(summaries) == 0 {
		return
	}

	ctx := context.Background()
	pipe := c.client.Pipeline()
	for id, summary := range summaries {
		data, err := json.Marshal(summary)
		if err != nil {
			continue
		}
		pipe.Set(ctx, profileKeyPrefix+id.String(), data, profileTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("profile cache write failed: %v", err)
	}
}

func (c *profileCache) Invalidate(id uuid.UUID) {
	ctx := context.Background()
	if err := c.client.Del(ctx, profileKeyPrefix+id.String()).Err(); err != nil {
		log.Printf("profile cache invalidate failed: %v", err)
	}
}
