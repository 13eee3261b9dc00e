package schema

import (
	"fmt"
	"time"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Categories a help request can be filed under. The list is fixed;
// submissions outside of it are rejected.
var Categories = []string{
	"General Help",
	"Transportation",
	"Shopping",
	"Household",
	"Childcare",
	"Pet Care",
	"Medical",
	"Other",
}

// UrgencyLabels are the display labels clients render next to each level.
var UrgencyLabels = map[string]string{
	UrgencyLow:    "Low - Can wait a few days",
	UrgencyMedium: "Medium - Within 24 hours",
	UrgencyHigh:   "High - Immediate assistance needed",
}

// HelpRequest is a listing a user posts to ask the community for assistance.
// GeoLocation holds a `POINT(lon lat)` text representation derived from
// Location; it is null whenever Location is absent, hidden or ungeocodable.
type HelpRequest struct {
	ID             string    `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	UserID         string    `json:"user_id" gorm:"type:uuid;index"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	UrgencyLevel   string    `json:"urgency_level"`
	Location       *string   `json:"location"`
	GeoLocation    *string   `json:"geo_location"`
	LocationHidden bool      `json:"location_hidden"`
	Status         string    `json:"status" sql:"default:'open'"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsValidUrgency reports whether a value belongs to the urgency enum.
func IsValidUrgency(v string) bool {
	switch v {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// IsValidStatus reports whether a value belongs to the status enum.
func IsValidStatus(v string) bool {
	switch v {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsValidCategory reports whether a value belongs to the category list.
func IsValidCategory(v string) bool {
	for _, c := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Projected returns the request as it may be shown to the given viewer.
// When the owner chose to hide the location, both the address and the
// derived coordinate are stripped for everyone else, independent of what
// is stored.
func (r HelpRequest) Projected(viewerID string) HelpRequest {
	if r.LocationHidden && r.UserID != viewerID {
		r.Location = nil
		r.GeoLocation = nil
	}
	return r
}

// PointString renders a lon/lat pair in the POINT text form GeoLocation uses.
func PointString(lon, lat float64) string {
	return fmt.Sprintf("POINT(%v %v)", lon, lat)
}
