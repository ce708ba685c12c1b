package services

import (
	"errors"

	"learnhub/models"

	"gorm.io/gorm"
)

type MessageService struct {
	db  *gorm.DB
	hub *Hub
}

func NewMessageService(db *gorm.DB, hub *Hub) *MessageService {
	return &MessageService{db: db, hub: hub}
}

type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Body        string `json:"body" binding:"required"`
}

func (s *MessageService) Send(senderID uint, req *SendMessageRequest) (*models.Message, error) {
	var recipient models.User
	if err := s.db.First(&recipient, req.RecipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	message := models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.NotifyUser(req.RecipientID, "message_received", message)
	}

	return &message, nil
}

// Conversation returns both directions of traffic between the caller and
// the other user, oldest first.
func (s *MessageService) Conversation(callerID, otherID uint) ([]models.Message, error) {
	var messages []models.Message
	err := s.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			callerID, otherID, otherID, callerID).
		Order("created_at").
		Find(&messages).Error
	return messages, err
}

// MarkRead flags everything the other user sent to the caller.
func (s *MessageService) MarkRead(callerID, otherID uint) error {
	return s.db.Model(&models.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND read = ?", otherID, callerID, false).
		Update("read", true).Error
}

func (s *MessageService) UnreadCount(callerID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Message{}).
		Where("recipient_id = ? AND read = ?", callerID, false).
		Count(&count).Error
	return count, err
}
