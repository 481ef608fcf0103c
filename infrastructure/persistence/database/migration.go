// database/migration.go
package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/zydnet/CineMystApp-sub002/domain/models"
)

// SetupDatabase ทำ migration และสร้าง index/function ที่จำเป็นทั้งหมด
func SetupDatabase(db *gorm.DB) error {
	if err := RunMigration(db); err != nil {
		return err
	}
	if err := CreateIndices(db); err != nil {
		return err
	}
	if db.Dialector.Name() == "postgres" {
		return createPostgresObjects(db)
	}
	return nil
}

// RunMigration ทำการ migrate โมเดลทั้งหมดไปยังฐานข้อมูล
func RunMigration(db *gorm.DB) error {
	log.Println("Running auto migration...")

	// การเรียงลำดับมีความสำคัญ - ตารางหลักก่อน แล้วค่อยตารางที่มี foreign key
	err := db.AutoMigrate(
		&models.User{},
		&models.Connection{},
		&models.Conversation{},
		&models.Gig{},
		&models.Message{},
	)
	if err != nil {
		log.Printf("Auto migration failed: %v", err)
		return err
	}

	log.Println("Auto migration completed")
	return nil
}

// CreateIndices สร้าง indices เพื่อเพิ่มประสิทธิภาพในการค้นหา
func CreateIndices(db *gorm.DB) error {
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_connections_requester_id ON connections(requester_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_connections_receiver_id ON connections(receiver_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_connections_status ON connections(status)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_conversations_participant1 ON conversations(participant1_id)").Error; err != nil {
		return err
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_conversations_participant2 ON conversations(participant2_id)").Error; err != nil {
		return err
	}

	return nil
}

// createPostgresObjects สร้าง constraint และ function ที่เป็นของ Postgres โดยเฉพาะ
func createPostgresObjects(db *gorm.DB) error {
	// unique index บนคู่ canonical ของ connections
	// กันสอง sendRequest ที่แข่งกันจากคนละฝั่งสร้าง edge ซ้ำ
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_connections_pair
		ON connections (LEAST(requester_id, receiver_id), GREATEST(requester_id, receiver_id))
	`).Error
	if err != nil {
		return err
	}

	// lookup-then-insert ของบทสนทนาภายใต้ transaction เดียวฝั่ง server
	// รับคู่ participant ที่ normalize แล้วเท่านั้น
	err = db.Exec(`
		CREATE OR REPLACE FUNCTION get_or_create_conversation(p1 uuid, p2 uuid)
		RETURNS SETOF conversations AS $$
		BEGIN
			RETURN QUERY
			INSERT INTO conversations (id, participant1_id, participant2_id, unread_count, created_at, updated_at)
			VALUES (gen_random_uuid(), p1, p2, 0, now(), now())
			ON CONFLICT (participant1_id, participant2_id) DO NOTHING
			RETURNING *;

			IF NOT FOUND THEN
				RETURN QUERY
				SELECT * FROM conversations
				WHERE participant1_id = p1 AND participant2_id = p2;
			END IF;
		END;
		$$ LANGUAGE plpgsql
	`).Error
	if err != nil {
		return err
	}

	return nil
}
