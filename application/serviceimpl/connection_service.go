// application/serviceimpl/connection_service.go
package serviceimpl

import (
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zydnet/CineMystApp-sub002/domain/dto"
	"github.com/zydnet/CineMystApp-sub002/domain/models"
	"github.com/zydnet/CineMystApp-sub002/domain/repository"
	"github.com/zydnet/CineMystApp-sub002/domain/service"
	apperrors "github.com/zydnet/CineMystApp-sub002/pkg/errors"
)

type connectionService struct {
	connectionRepo repository.ConnectionRepository
	userRepo       repository.UserRepository
	userService    service.UserService
}

func NewConnectionService(
	connectionRepo repository.ConnectionRepository,
	userRepo repository.UserRepository,
	userService service.UserService,
) service.ConnectionService {
	return &connectionService{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
		userService:    userService,
	}
}

// SendRequest ส่งคำขอเชื่อมต่อไปยัง target
// คำขอที่เคยถูกปฏิเสธเปิดใหม่ได้โดย reuse record เดิม
func (s *connectionService) SendRequest(viewerID, targetID uuid.UUID) (*models.Connection, error) {
	if viewerID == uuid.Nil {
		return nil, apperrors.Unauthenticated("no active session")
	}
	if viewerID == targetID {
		return nil, apperrors.InvalidArg("cannot send a connection request to yourself")
	}

	// ตรวจสอบว่า target มีอยู่จริง
	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, storeErr("failed to load user", err)
	}

	existing, err := s.connectionRepo.FindByPair(viewerID, targetID)
	if err != nil {
		return nil, storeErr("failed to look up connection", err)
	}

	if existing != nil {
		switch existing.Status {
		case models.ConnectionStatusPending, models.ConnectionStatusAccepted:
			return nil, apperrors.AlreadyExists("connection request already exists")
		case models.ConnectionStatusRejected:
			// เปิดคำขอใหม่จาก record ที่ถูกปฏิเสธ
			existing.Status = models.ConnectionStatusPending
			existing.CreatedAt = time.Now()
			// ถ้าทิศทางเดิมกลับด้านกับคำขอรอบนี้ ให้สลับให้ตรง
			if existing.RequesterID != viewerID {
				existing.RequesterID = viewerID
				existing.ReceiverID = targetID
			}
			if err := s.connectionRepo.Update(existing); err != nil {
				return nil, storeErr("failed to reopen connection request", err)
			}
			return existing, nil
		}
	}

	connection := &models.Connection{
		ID:          uuid.New(),
		RequesterID: viewerID,
		ReceiverID:  targetID,
		Status:      models.ConnectionStatusPending,
	}
	if err := s.connectionRepo.Create(connection); err != nil {
		return nil, storeErr("failed to create connection request", err)
	}
	return connection, nil
}

// AcceptRequest ยอมรับคำขอจาก requester
// ศูนย์ row ถูกแก้แปลว่าคำขอถูกจัดการไปก่อนแล้ว ถือว่าสำเร็จ (idempotent)
func (s *connectionService) AcceptRequest(viewerID, requesterID uuid.UUID) error {
	if viewerID == uuid.Nil {
		return apperrors.Unauthenticated("no active session")
	}

	if _, err := s.connectionRepo.UpdatePendingStatus(requesterID, viewerID, models.ConnectionStatusAccepted); err != nil {
		return storeErr("failed to accept connection request", err)
	}
	return nil
}

// RejectRequest ปฏิเสธคำขอจาก requester
func (s *connectionService) RejectRequest(viewerID, requesterID uuid.UUID) error {
	if viewerID == uuid.Nil {
		return apperrors.Unauthenticated("no active session")
	}

	if _, err := s.connectionRepo.UpdatePendingStatus(requesterID, viewerID, models.ConnectionStatusRejected); err != nil {
		return storeErr("failed to reject connection request", err)
	}
	return nil
}

// CancelRequest ยกเลิกคำขอที่ viewer เป็นคนส่ง ทำได้เฉพาะตอนยัง pending
func (s *connectionService) CancelRequest(viewerID, targetID uuid.UUID) error {
	if viewerID == uuid.Nil {
		return apperrors.Unauthenticated("no active session")
	}

	if _, err := s.connectionRepo.DeletePending(viewerID, targetID); err != nil {
		return storeErr("failed to cancel connection request", err)
	}
	return nil
}

// RemoveConnection ลบ connection ของคู่นี้ไม่ว่าทิศทางหรือสถานะใด
func (s *connectionService) RemoveConnection(viewerID, otherID uuid.UUID) error {
	if viewerID == uuid.Nil {
		return apperrors.Unauthenticated("no active session")
	}

	if _, err := s.connectionRepo.DeleteByPair(viewerID, otherID); err != nil {
		return storeErr("failed to remove connection", err)
	}
	return nil
}

// GetState คำนวณสถานะความสัมพันธ์จากมุมมองของ viewer
// ไม่มี record ไม่ใช่ error แปลว่ายังไม่เชื่อมต่อกัน
func (s *connectionService) GetState(viewerID, otherID uuid.UUID) (models.RelationshipState, error) {
	connection, err := s.connectionRepo.FindByPair(viewerID, otherID)
	if err != nil {
		return "", storeErr("failed to look up connection", err)
	}
	if connection == nil {
		return models.RelationshipNotConnected, nil
	}
	return connection.StateFor(viewerID), nil
}

// ListConnections ดึงรายชื่อ connection ที่ accepted พร้อม profile ของอีกฝ่าย
// profile ทั้งชุดถูกดึงในการ query เดียว ไม่วน fetch ทีละคน
func (s *connectionService) ListConnections(userID uuid.UUID, limit int) ([]dto.ConnectionItem, error) {
	connections, err := s.connectionRepo.FindAccepted(userID, limit)
	if err != nil {
		return nil, storeErr("failed to list connections", err)
	}

	otherIDs := make([]uuid.UUID, 0, len(connections))
	for _, connection := range connections {
		otherIDs = append(otherIDs, connection.OtherParty(userID))
	}

	summaries, err := s.userService.GetProfileSummaries(otherIDs)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ConnectionItem, 0, len(connections))
	for _, connection := range connections {
		otherID := connection.OtherParty(userID)
		summary, ok := summaries[otherID]
		if !ok {
			summary = dto.PlaceholderUserSummary(otherID)
		}
		items = append(items, dto.ConnectionItem{
			ConnectionID: connection.ID,
			User:         summary,
			ConnectedAt:  connection.UpdatedAt,
		})
	}
	return items, nil
}

func (s *connectionService) CountConnections(userID uuid.UUID) (int64, error) {
	count, err := s.connectionRepo.CountAccepted(userID)
	if err != nil {
		return 0, storeErr("failed to count connections", err)
	}
	return count, nil
}

// storeErr ห่อ error จากชั้น persistence เป็น StoreError
// ถ้าเป็น AppError อยู่แล้วส่งต่อตามเดิม
func storeErr(msg string, err error) error {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		return err
	}
	return apperrors.Store(msg, err)
}
