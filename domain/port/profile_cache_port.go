// domain/port/profile_cache_port.go
package port

import (
	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
)

// ProfileCachePort - cache สำหรับ profile summary ที่ใช้ในรายการ
// connection/conversation พลาด cache ไม่ถือเป็น error
type ProfileCachePort interface {
	GetMany(ids []uuid.UUID) (map[uuid.UUID]dto.UserSummary, []uuid.UUID)
	SetMany(summaries map[uuid.UUID]dto.UserSummary)
	Invalidate(id uuid.UUID)
}
