package store

import (
	"fmt"

	"github.com/helpconnect/helpconnect-api/schema"
)

var ErrMessageNotExist = fmt.Errorf("the message does not exist or is not addressed to you")

// CreateMessage stores a direct message between two users
func (s *HelpConnectStore) CreateMessage(senderID, receiverID, content string) (*schema.Message, error) {
	m := schema.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  nowUTC(),
	}

	if err := s.ormDB.Create(&m).Error; err != nil {
		return nil, err
	}

	return &m, nil
}

// ListMessages returns every message sent to or by an account, newest first
func (s *HelpConnectStore) ListMessages(accountID string) ([]schema.Message, error) {
	messages := []schema.Message{}

	if err := s.ormDB.
		Where("sender_id = ? OR receiver_id = ?", accountID, accountID).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}

// MarkMessageRead flags a message as read. Only the receiver matches the
// WHERE clause.
func (s *HelpConnectStore) MarkMessageRead(id, receiverID string) error {
	result := s.ormDB.Model(schema.Message{}).
		Where("id = ? AND receiver_id = ?", id, receiverID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrMessageNotExist
	}

	return nil
}
