// domain/dto/gig_dto.go
package dto

// CreateGigRequest สำหรับลงประกาศ casting call ใหม่
type CreateGigRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Role        string `json:"role,omitempty"`
	Location    string `json:"location,omitempty"`
}

// UpdateGigRequest สำหรับแก้ไขประกาศ
type UpdateGigRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Role        *string `json:"role,omitempty"`
	Location    *string `json:"location,omitempty"`
	IsOpen      *bool   `json:"is_open,omitempty"`
}

// ListGigsRequest พารามิเตอร์การกรองรายการประกาศ
type ListGigsRequest struct {
	Role     string `json:"role" query:"role"`
	Location string `json:"location" query:"location"`
	OpenOnly bool   `json:"open_only" query:"open_only"`
	Limit    int    `json:"limit" query:"limit"`
	Offset   int    `json:"offset" query:"offset"`
}
