package feed

import (
	"context"

	"github.com/helpconnect/helpconnect-api/realtime"
	"github.com/helpconnect/helpconnect-api/schema"
	"github.com/helpconnect/helpconnect-api/store"
)

// StoreWriter adapts the datastore to the gateway's Writer interface for
// in-process use, publishing the matching change event after each durable
// write so every live feed stays in sync.
type StoreWriter struct {
	store   store.HelpConnectCore
	hub     *realtime.Hub
	actorID string
}

func NewStoreWriter(s store.HelpConnectCore, hub *realtime.Hub, actorID string) *StoreWriter {
	return &StoreWriter{
		store:   s,
		hub:     hub,
		actorID: actorID,
	}
}

func (w *StoreWriter) Insert(ctx context.Context, req schema.HelpRequest) (*schema.HelpRequest, error) {
	created, err := w.store.CreateRequest(req)
	if err != nil {
		return nil, err
	}

	w.hub.Broadcast(realtime.NewInsertEvent(*created))
	return created, nil
}

func (w *StoreWriter) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	updated, err := w.store.UpdateRequest(id, w.actorID, fields)
	if err != nil {
		return err
	}

	w.hub.Broadcast(realtime.NewUpdateEvent(*updated))
	return nil
}
