// domain/models/connection.go

package models

import (
	"time"

	"github.com/google/uuid"
)

// สถานะของ Connection
const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
	ConnectionStatusRejected = "rejected"
)

// Connection - คำขอเชื่อมต่อระหว่างผู้ใช้สองคน
// เก็บแบบมีทิศทาง (requester -> receiver) แต่ logical แล้วคู่ (A,B) กับ (B,A)
// ถือเป็น edge เดียวกัน การ query จึงต้องมองทั้งสองทิศทางเสมอ
type Connection struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	RequesterID uuid.UUID `json:"requester_id" gorm:"type:uuid;not null"`
	ReceiverID  uuid.UUID `json:"receiver_id" gorm:"type:uuid;not null"`
	Status      string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"` // pending, accepted, rejected
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Requester *User `json:"requester,omitempty" gorm:"foreignkey:RequesterID"`
	Receiver  *User `json:"receiver,omitempty" gorm:"foreignkey:ReceiverID"`
}

// TableName - ระบุชื่อตารางใน database
func (Connection) TableName() string {
	return "connections"
}

// OtherParty คืน ID ของอีกฝ่ายใน connection เมื่อมองจาก userID
func (c *Connection) OtherParty(userID uuid.UUID) uuid.UUID {
	if c.RequesterID == userID {
		return c.ReceiverID
	}
	return c.RequesterID
}

// RelationshipState - สถานะความสัมพันธ์เมื่อมองจากฝั่งผู้ชม (derived, ไม่เก็บลงฐานข้อมูล)
type RelationshipState string

const (
	RelationshipNotConnected    RelationshipState = "not_connected"
	RelationshipRequestSent     RelationshipState = "request_sent"
	RelationshipRequestReceived RelationshipState = "request_received"
	RelationshipConnected       RelationshipState = "connected"
	RelationshipRejected        RelationshipState = "rejected"
)

// StateFor คำนวณ RelationshipState ของ connection จากมุมมองของ viewer
func (c *Connection) StateFor(viewerID uuid.UUID) RelationshipState {
	switch c.Status {
	case ConnectionStatusAccepted:
		return RelationshipConnected
	case ConnectionStatusRejected:
		return RelationshipRejected
	case ConnectionStatusPending:
		if c.RequesterID == viewerID {
			return RelationshipRequestSent
		}
		return RelationshipRequestReceived
	}
	return RelationshipNotConnected
}
