// domain/dto/common_dto.go
package dto

import (
	"github.com/google/uuid"
)

// GenericResponse โครงการตอบกลับพื้นฐาน
type GenericResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UserSummary ข้อมูลย่อของผู้ใช้สำหรับแสดงในรายการ
type UserSummary struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name"`
	Role            string    `json:"role,omitempty"`
	Headline        string    `json:"headline,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
}

// PlaceholderUserSummary สร้าง summary สำรองเมื่อดึง profile ไม่สำเร็จ
// เพื่อไม่ให้รายการ conversation หลุดหายไปเงียบๆ
func PlaceholderUserSummary(id uuid.UUID) UserSummary {
	return UserSummary{
		ID:          id,
		Username:    "unknown",
		DisplayName: "Unknown User",
	}
}
