package store

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/helpconnect/helpconnect-api/schema"
)

var (
	ErrAccountTaken    = fmt.Errorf("the email or username has been taken")
	ErrAccountNotFound = fmt.Errorf("account not found")
)

// CreateAccount is to register an account into the helpconnect system
func (s *HelpConnectStore) CreateAccount(email, passwordHash, username string) (*schema.Account, error) {
	a := schema.Account{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Username:     strings.TrimSpace(username),
		Skills:       schema.StringList{},
		Metadata:     schema.AccountMetadata{},
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given id
func (s *HelpConnectStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAccountByEmail looks an account up by its normalized email
func (s *HelpConnectStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccountProfile updates profile fields for a specific account. Only
// whitelisted columns may be touched; identity columns are never updatable.
func (s *HelpConnectStore) UpdateAccountProfile(id string, fields map[string]interface{}) error {
	updates := map[string]interface{}{}
	for k, v := range fields {
		switch k {
		case "full_name", "bio", "location", "language", "skills", "metadata":
			updates[k] = v
		}
	}

	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = nowUTC()

	result := s.ormDB.Model(schema.Account{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// DeleteAccount removes an account from our system permanently
func (s *HelpConnectStore) DeleteAccount(id string) error {
	return s.ormDB.Delete(schema.Account{}, "id = ?", id).Error
}
