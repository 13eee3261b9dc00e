package store

import (
	"fmt"

	"github.com/helpconnect/helpconnect-api/schema"
)

var (
	ErrRequestNotExist  = fmt.Errorf("the request does not exist or is not owned by you")
	ErrInvalidEnumValue = fmt.Errorf("invalid status or urgency value")
)

// CreateRequest creates a help request entry. The status of a new request is
// always forced to `open` regardless of what the caller filled in.
func (s *HelpConnectStore) CreateRequest(req schema.HelpRequest) (*schema.HelpRequest, error) {
	if !schema.IsValidUrgency(req.UrgencyLevel) {
		return nil, ErrInvalidEnumValue
	}

	req.ID = ""
	req.Status = schema.StatusOpen
	req.CreatedAt = nowUTC()
	req.UpdatedAt = req.CreatedAt

	if err := s.ormDB.Create(&req).Error; err != nil {
		return nil, err
	}

	return &req, nil
}

// GetRequest returns a single help request by id
func (s *HelpConnectStore) GetRequest(id string) (*schema.HelpRequest, error) {
	var req schema.HelpRequest
	if err := s.ormDB.Where("id = ?", id).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListRequests returns the most recent help requests, newest first. An empty
// status returns every status; count caps the result.
func (s *HelpConnectStore) ListRequests(status string, count int64) ([]schema.HelpRequest, error) {
	requests := []schema.HelpRequest{}

	query := s.ormDB.Order("created_at desc").Limit(count)
	if status != "" {
		if !schema.IsValidStatus(status) {
			return nil, ErrInvalidEnumValue
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// requestColumns are the columns the owner may change after creation.
var requestColumns = map[string]bool{
	"title":           true,
	"description":     true,
	"category":        true,
	"urgency_level":   true,
	"location":        true,
	"geo_location":    true,
	"location_hidden": true,
	"status":          true,
}

// UpdateRequest applies a partial update to a request. The ownership check is
// part of the WHERE clause so a non-owner update matches zero rows. Enum
// fields are rejected, never coerced, when they fall outside their sets.
func (s *HelpConnectStore) UpdateRequest(id, ownerID string, fields map[string]interface{}) (*schema.HelpRequest, error) {
	updates := map[string]interface{}{}
	for k, v := range fields {
		if !requestColumns[k] {
			continue
		}

		switch k {
		case "status":
			status, ok := v.(string)
			if !ok || !schema.IsValidStatus(status) {
				return nil, ErrInvalidEnumValue
			}
		case "urgency_level":
			urgency, ok := v.(string)
			if !ok || !schema.IsValidUrgency(urgency) {
				return nil, ErrInvalidEnumValue
			}
		}
		updates[k] = v
	}

	updates["updated_at"] = nowUTC()

	result := s.ormDB.Model(schema.HelpRequest{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrRequestNotExist
	}

	return s.GetRequest(id)
}

// DeleteRequest removes a request. Only the owner matches the WHERE clause.
func (s *HelpConnectStore) DeleteRequest(id, ownerID string) error {
	result := s.ormDB.Delete(schema.HelpRequest{}, "id = ? AND user_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRequestNotExist
	}

	return nil
}
