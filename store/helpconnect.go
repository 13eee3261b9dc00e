package store

import (
	"time"

	"github.com/jinzhu/gorm"

	"github.com/helpconnect/helpconnect-api/schema"
)

// helpconnect main datastore
type HelpConnectCore interface {
	Ping() error

	// Account
	CreateAccount(email, passwordHash, username string) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)
	UpdateAccountProfile(id string, fields map[string]interface{}) error
	DeleteAccount(id string) error

	// Help requests
	CreateRequest(req schema.HelpRequest) (*schema.HelpRequest, error)
	GetRequest(id string) (*schema.HelpRequest, error)
	ListRequests(status string, count int64) ([]schema.HelpRequest, error)
	UpdateRequest(id, ownerID string, fields map[string]interface{}) (*schema.HelpRequest, error)
	DeleteRequest(id, ownerID string) error

	// Messages
	CreateMessage(senderID, receiverID, content string) (*schema.Message, error)
	ListMessages(accountID string) ([]schema.Message, error)
	MarkMessageRead(id, receiverID string) error
}

// HelpConnectStore is an implementation of HelpConnectCore
type HelpConnectStore struct {
	ormDB *gorm.DB
}

func NewHelpConnectStore(ormDB *gorm.DB) *HelpConnectStore {
	return &HelpConnectStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *HelpConnectStore) Ping() error {
	return s.ormDB.DB().Ping()
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
