package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumMembership(t *testing.T) {
	assert.True(t, IsValidUrgency("low"))
	assert.True(t, IsValidUrgency("medium"))
	assert.True(t, IsValidUrgency("high"))
	assert.False(t, IsValidUrgency("critical"))
	assert.False(t, IsValidUrgency(""))

	assert.True(t, IsValidStatus("open"))
	assert.True(t, IsValidStatus("in_progress"))
	assert.True(t, IsValidStatus("completed"))
	assert.True(t, IsValidStatus("cancelled"))
	assert.False(t, IsValidStatus("archived"))

	assert.True(t, IsValidCategory("Shopping"))
	assert.False(t, IsValidCategory("shopping"))
}

func TestProjected(t *testing.T) {
	location := "221B Baker Street, London"
	geo := "POINT(-0.1586 51.5237)"

	req := HelpRequest{
		ID:             "req-1",
		UserID:         "owner",
		Location:       &location,
		GeoLocation:    &geo,
		LocationHidden: true,
	}

	// the owner always sees their own location
	own := req.Projected("owner")
	assert.NotNil(t, own.Location)
	assert.NotNil(t, own.GeoLocation)

	// everyone else sees neither the address nor the coordinate
	other := req.Projected("viewer")
	assert.Nil(t, other.Location)
	assert.Nil(t, other.GeoLocation)

	// a request without the flag is visible to all
	req.LocationHidden = false
	visible := req.Projected("viewer")
	assert.NotNil(t, visible.Location)
	assert.NotNil(t, visible.GeoLocation)
}

func TestUrgencyLabelsCoverEnum(t *testing.T) {
	for _, urgency := range []string{UrgencyLow, UrgencyMedium, UrgencyHigh} {
		assert.Contains(t, UrgencyLabels, urgency)
	}
}
