package schema

import "time"

// Message is a direct message between two users.
type Message struct {
	ID         string    `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	SenderID   string    `json:"sender_id" gorm:"type:uuid;index"`
	ReceiverID string    `json:"receiver_id" gorm:"type:uuid;index"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}
