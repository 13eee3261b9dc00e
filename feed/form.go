package feed

import (
	"context"
	"time"

	"github.com/helpconnect/helpconnect-api/external/geocoding"
	"github.com/helpconnect/helpconnect-api/schema"
)

// RequestForm carries the user-entered fields of a new or edited request.
type RequestForm struct {
	Title          string
	Description    string
	Category       string
	UrgencyLevel   string
	Location       string
	LocationHidden bool
}

func (f RequestForm) validate() error {
	if !schema.IsValidUrgency(f.UrgencyLevel) {
		return ErrInvalidUrgency
	}
	if !schema.IsValidCategory(f.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// resolveLocation geocodes a visible location. A hidden or empty location
// resolves to nil without a lookup.
func (g *MutationGateway) resolveLocation(ctx context.Context, form RequestForm) (*string, error) {
	if form.Location == "" || form.LocationHidden {
		return nil, nil
	}

	point, err := g.geocoder.Geocode(ctx, form.Location)
	if err == geocoding.ErrNotFound {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, err
	}

	geo := schema.PointString(point.Longitude, point.Latitude)
	return &geo, nil
}

// SubmitNew validates and creates a help request. Enum fields are checked
// before any network traffic; a visible location that cannot be geocoded
// blocks the submission. Status is always open at creation. When the write
// echoes the stored entity, the returned request carries the store-assigned
// id; either way the feed learns about the create through the live channel.
func (g *MutationGateway) SubmitNew(ctx context.Context, form RequestForm) (schema.HelpRequest, error) {
	var req schema.HelpRequest

	if err := form.validate(); err != nil {
		return req, err
	}

	geoLocation, err := g.resolveLocation(ctx, form)
	if err != nil {
		return req, err
	}

	var location *string
	if form.Location != "" {
		location = &form.Location
	}

	req = schema.HelpRequest{
		UserID:         g.actorID,
		Title:          form.Title,
		Description:    form.Description,
		Category:       form.Category,
		UrgencyLevel:   form.UrgencyLevel,
		Location:       location,
		GeoLocation:    geoLocation,
		LocationHidden: form.LocationHidden,
		Status:         schema.StatusOpen,
	}

	created, err := g.writer.Insert(ctx, req)
	if err != nil {
		g.log.WithError(err).Error("error creating request")
		return schema.HelpRequest{}, err
	}
	if created != nil {
		req = *created
	}

	return req, nil
}

// SubmitEdit validates and saves changes to an existing request. Ownership
// is re-checked here regardless of what the caller's UI allowed. When the
// location text is unchanged the prior coordinate is kept, avoiding a
// redundant geocoding call.
func (g *MutationGateway) SubmitEdit(ctx context.Context, existing schema.HelpRequest, form RequestForm) (schema.HelpRequest, error) {
	if existing.UserID != g.actorID {
		return existing, ErrNotOwner
	}

	if err := form.validate(); err != nil {
		return existing, err
	}
	if !schema.IsValidStatus(existing.Status) {
		return existing, ErrInvalidStatus
	}

	var location, geoLocation *string
	if form.Location != "" {
		location = &form.Location
	}

	unchanged := existing.Location != nil && *existing.Location == form.Location && existing.GeoLocation != nil
	if unchanged {
		geoLocation = existing.GeoLocation
	} else {
		resolved, err := g.resolveLocation(ctx, form)
		if err != nil {
			return existing, err
		}
		geoLocation = resolved
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{
		"title":           form.Title,
		"description":     form.Description,
		"category":        form.Category,
		"urgency_level":   form.UrgencyLevel,
		"location":        location,
		"geo_location":    geoLocation,
		"location_hidden": form.LocationHidden,
		"status":          existing.Status,
		"updated_at":      now.Format(time.RFC3339Nano),
	}

	if err := g.writer.Update(ctx, existing.ID, fields); err != nil {
		g.log.WithError(err).Error("error updating request")
		return existing, err
	}

	updated := existing
	updated.Title = form.Title
	updated.Description = form.Description
	updated.Category = form.Category
	updated.UrgencyLevel = form.UrgencyLevel
	updated.Location = location
	updated.GeoLocation = geoLocation
	updated.LocationHidden = form.LocationHidden
	updated.UpdatedAt = now
	g.applyLocal(updated)

	return updated, nil
}
