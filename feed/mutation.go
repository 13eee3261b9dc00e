package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/helpconnect/helpconnect-api/external/geocoding"
	"github.com/helpconnect/helpconnect-api/schema"
)

var (
	ErrInvalidStatus   = fmt.Errorf("invalid status value")
	ErrInvalidUrgency  = fmt.Errorf("invalid urgency level")
	ErrInvalidCategory = fmt.Errorf("invalid category")
	ErrNotOwner        = fmt.Errorf("only the owner may edit this request")

	// ErrLocationNotFound blocks a submission whose visible location cannot
	// be resolved; a null coordinate is never persisted silently.
	ErrLocationNotFound = fmt.Errorf("could not find coordinates for the provided location")
)

// Writer is the remote write interface: partial updates keyed by id, or
// full inserts. An insert may echo the stored entity back (carrying the
// store-assigned id); updates are not assumed to — the gateway constructs
// the expected post-write shape itself.
type Writer interface {
	Insert(ctx context.Context, req schema.HelpRequest) (*schema.HelpRequest, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

// MutationGateway performs owner-gated mutations of help requests with
// immediate local feedback and remote durability. Nothing is committed
// locally before the remote write confirms; a failed write leaves the
// displayed value untouched.
type MutationGateway struct {
	writer   Writer
	geocoder geocoding.Geocoder
	sync     *Synchronizer
	actorID  string

	log *logrus.Entry
}

// NewMutationGateway builds a gateway acting as actorID. sync may be nil
// when there is no local feed to update, as in the request handlers, where
// subscribers learn about the write through the change event instead.
func NewMutationGateway(writer Writer, geocoder geocoding.Geocoder, sync *Synchronizer, actorID string) *MutationGateway {
	return &MutationGateway{
		writer:   writer,
		geocoder: geocoder,
		sync:     sync,
		actorID:  actorID,
		log:      logrus.WithField("prefix", "feed"),
	}
}

// ChangeStatus moves a request to a new status. A caller who is not the
// owner is treated as inert: no write is issued and no error raised, since
// the control surface should never have been shown to them.
func (g *MutationGateway) ChangeStatus(ctx context.Context, req schema.HelpRequest, newStatus string) (schema.HelpRequest, error) {
	if req.UserID != g.actorID {
		return req, nil
	}

	if !schema.IsValidStatus(newStatus) {
		return req, ErrInvalidStatus
	}

	now := time.Now().UTC()
	if err := g.writer.Update(ctx, req.ID, map[string]interface{}{
		"status":     newStatus,
		"updated_at": now.Format(time.RFC3339Nano),
	}); err != nil {
		g.log.WithError(err).Error("error updating status")
		return req, err
	}

	updated := req
	updated.Status = newStatus
	updated.UpdatedAt = now
	g.applyLocal(updated)

	return updated, nil
}

// ChangeUrgency changes the urgency level, with the same owner gate and
// optimistic semantics as ChangeStatus.
func (g *MutationGateway) ChangeUrgency(ctx context.Context, req schema.HelpRequest, newUrgency string) (schema.HelpRequest, error) {
	if req.UserID != g.actorID {
		return req, nil
	}

	if !schema.IsValidUrgency(newUrgency) {
		return req, ErrInvalidUrgency
	}

	now := time.Now().UTC()
	if err := g.writer.Update(ctx, req.ID, map[string]interface{}{
		"urgency_level": newUrgency,
		"updated_at":    now.Format(time.RFC3339Nano),
	}); err != nil {
		g.log.WithError(err).Error("error updating urgency level")
		return req, err
	}

	updated := req
	updated.UrgencyLevel = newUrgency
	updated.UpdatedAt = now
	g.applyLocal(updated)

	return updated, nil
}

func (g *MutationGateway) applyLocal(updated schema.HelpRequest) {
	if g.sync == nil {
		return
	}
	g.sync.ApplyLocal(updated)
}
