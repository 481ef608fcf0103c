// domain/dto/user_dto.go
package dto

// SearchUsersRequest สำหรับการค้นหาผู้ใช้
type SearchUsersRequest struct {
	Query  string `json:"q" query:"q" validate:"required"`
	Limit  int    `json:"limit" query:"limit"`
	Offset int    `json:"offset" query:"offset"`
}

// UpdateProfileRequest สำหรับแก้ไข profile ของตัวเอง
type UpdateProfileRequest struct {
	DisplayName     *string `json:"display_name,omitempty"`
	Role            *string `json:"role,omitempty"`
	Headline        *string `json:"headline,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Location        *string `json:"location,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}
