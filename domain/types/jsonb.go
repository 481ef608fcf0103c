// domain/types/jsonb.go
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB - ข้อมูลแบบ jsonb สำหรับเก็บใน Postgres
type JSONB map[string]interface{}

// Value แปลงเป็นค่าที่ driver เข้าใจ
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan อ่านค่าจากฐานข้อมูลกลับมาเป็น JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONB")
	}

	return json.Unmarshal(data, j)
}
