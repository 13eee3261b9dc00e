package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList stores a list of free-text values in a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

type AccountMetadata map[string]interface{}

func (u AccountMetadata) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *AccountMetadata) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}

	return json.Unmarshal(source, &u)
}

// Account is a registered user. PasswordHash never leaves the server.
type Account struct {
	ID           string          `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email        string          `json:"email" gorm:"unique_index"`
	PasswordHash string          `json:"-"`
	Username     string          `json:"username" gorm:"unique_index"`
	FullName     string          `json:"full_name"`
	Bio          string          `json:"bio"`
	Location     string          `json:"location"`
	Language     string          `json:"language" sql:"default:'en'"`
	Skills       StringList      `json:"skills" gorm:"type:jsonb;not null;default '[]'"`
	IsVerified   bool            `json:"is_verified"`
	Metadata     AccountMetadata `json:"metadata" gorm:"type:jsonb;not null;default '{}'"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// PublicProfile is the projection of an account other users may see.
type PublicProfile struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	FullName   string     `json:"full_name"`
	Bio        string     `json:"bio"`
	Skills     StringList `json:"skills"`
	IsVerified bool       `json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Public returns the profile view of an account.
func (a Account) Public() PublicProfile {
	return PublicProfile{
		ID:         a.ID,
		Username:   a.Username,
		FullName:   a.FullName,
		Bio:        a.Bio,
		Skills:     a.Skills,
		IsVerified: a.IsVerified,
		CreatedAt:  a.CreatedAt,
	}
}
