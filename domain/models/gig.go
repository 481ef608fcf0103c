// domain/models/gig.go

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/types"
)

// Gig - ประกาศรับงานคัดเลือกนักแสดง (casting call)
type Gig struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	AuthorID    uuid.UUID   `json:"author_id" gorm:"type:uuid;not null;index"`
	Title       string      `json:"title" gorm:"type:varchar(150);not null"`
	Description string      `json:"description,omitempty" gorm:"type:text"`
	Role        string      `json:"role,omitempty" gorm:"type:varchar(30)"` // บทบาทที่รับสมัคร เช่น actor, crew
	Location    string      `json:"location,omitempty" gorm:"type:varchar(100)"`
	IsOpen      bool        `json:"is_open" gorm:"default:true"`
	Metadata    types.JSONB `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// Associations
	Author *User `json:"author,omitempty" gorm:"foreignkey:AuthorID"`
}

// TableName - ระบุชื่อตารางใน database
func (Gig) TableName() string {
	return "gigs"
}
