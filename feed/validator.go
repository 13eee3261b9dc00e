package feed

import (
	"fmt"
	"time"

	"github.com/helpconnect/helpconnect-api/schema"
)

var ErrInvalidRequestData = fmt.Errorf("invalid request data")

// ValidateRecord is the single trust boundary between the live channel and
// feed state. It either returns a fully-typed help request or rejects the
// record; nothing downstream ever sees a partially-populated entity.
//
// Enum fields are coerced to string before the membership check because
// inbound payloads are not pre-typed. location and geo_location may each be
// a string or absent/null. location_hidden must be an actual boolean, not a
// truthy value.
func ValidateRecord(record map[string]interface{}) (schema.HelpRequest, error) {
	var req schema.HelpRequest

	id, ok := stringField(record, "id")
	if !ok {
		return req, ErrInvalidRequestData
	}
	userID, ok := stringField(record, "user_id")
	if !ok {
		return req, ErrInvalidRequestData
	}
	title, ok := stringField(record, "title")
	if !ok {
		return req, ErrInvalidRequestData
	}
	description, ok := stringField(record, "description")
	if !ok {
		return req, ErrInvalidRequestData
	}
	category, ok := stringField(record, "category")
	if !ok {
		return req, ErrInvalidRequestData
	}

	urgency := coerceString(record["urgency_level"])
	if !schema.IsValidUrgency(urgency) {
		return req, ErrInvalidRequestData
	}

	status := coerceString(record["status"])
	if !schema.IsValidStatus(status) {
		return req, ErrInvalidRequestData
	}

	location, ok := optionalStringField(record, "location")
	if !ok {
		return req, ErrInvalidRequestData
	}
	geoLocation, ok := optionalStringField(record, "geo_location")
	if !ok {
		return req, ErrInvalidRequestData
	}

	locationHidden, ok := record["location_hidden"].(bool)
	if !ok {
		return req, ErrInvalidRequestData
	}

	createdAt, ok := timeField(record, "created_at")
	if !ok {
		return req, ErrInvalidRequestData
	}
	updatedAt, ok := timeField(record, "updated_at")
	if !ok {
		return req, ErrInvalidRequestData
	}

	req = schema.HelpRequest{
		ID:             id,
		UserID:         userID,
		Title:          title,
		Description:    description,
		Category:       category,
		UrgencyLevel:   urgency,
		Location:       location,
		GeoLocation:    geoLocation,
		LocationHidden: locationHidden,
		Status:         status,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
	return req, nil
}

func stringField(record map[string]interface{}, key string) (string, bool) {
	s, ok := record[key].(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// optionalStringField accepts a string, nil, or an absent key.
func optionalStringField(record map[string]interface{}, key string) (*string, bool) {
	v, exists := record[key]
	if !exists || v == nil {
		return nil, true
	}

	s, ok := v.(string)
	if !ok {
		return nil, false
	}
	return &s, true
}

func timeField(record map[string]interface{}, key string) (time.Time, bool) {
	s, ok := record[key].(string)
	if !ok || s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func coerceString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
