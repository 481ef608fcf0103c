// domain/models/user.go

package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/zydnet/CineMystApp-sub002/domain/types"
)

// User - ผู้ใช้ในระบบ (นักแสดง, casting director, ทีมงาน)
type User struct {
	ID              uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	Username        string      `json:"username" gorm:"type:varchar(50);not null;unique"`
	DisplayName     string      `json:"display_name,omitempty" gorm:"type:varchar(100)"`
	Role            string      `json:"role" gorm:"type:varchar(30);default:'actor'"` // actor, casting_director, producer, crew
	Headline        string      `json:"headline,omitempty" gorm:"type:varchar(150)"`
	Bio             string      `json:"bio,omitempty" gorm:"type:text"`
	Location        string      `json:"location,omitempty" gorm:"type:varchar(100)"`
	ProfileImageURL string      `json:"profile_image_url,omitempty" gorm:"type:text"`
	Settings        types.JSONB `json:"settings,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// Associations
	SentConnections     []*Connection `json:"sent_connections,omitempty" gorm:"foreignkey:RequesterID"`
	ReceivedConnections []*Connection `json:"received_connections,omitempty" gorm:"foreignkey:ReceiverID"`
	Messages            []*Message    `json:"messages,omitempty" gorm:"foreignkey:SenderID"`
	Gigs                []*Gig        `json:"gigs,omitempty" gorm:"foreignkey:AuthorID"`
}

// TableName - ระบุชื่อตารางใน database
func (User) TableName() string {
	return "users"
}
