// domain/models/pair.go

package models

import (
	"bytes"

	"github.com/google/uuid"
)

// NormalizePair จัดเรียงคู่ user ID ให้อยู่ในลำดับ canonical (เรียงตาม byte)
// ทั้ง conversations และ unique constraint ของ connections ใช้ลำดับนี้
// เพื่อให้คู่ (A,B) กับ (B,A) ชี้ไปที่ record เดียวกันเสมอ
func NormalizePair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}
