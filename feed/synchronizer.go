package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/helpconnect/helpconnect-api/realtime"
	"github.com/helpconnect/helpconnect-api/schema"
)

// FilterAll shows every status.
const FilterAll = "all"

var ErrInvalidFilter = fmt.Errorf("invalid status filter")

// Synchronizer owns the list of help requests a viewer currently sees. It
// reconciles an initial snapshot with the live change stream and exposes a
// status-filtered view. Inserts prepend, so visible order reflects arrival
// order of creates; updates and local mutations replace in place by id,
// last applied wins.
//
// A malformed insert marks the feed with a surfaced error but does not stop
// it; malformed updates and deletes are logged and dropped. One bad event
// never halts reconciliation of the rest.
type Synchronizer struct {
	mu       sync.Mutex
	requests []schema.HelpRequest
	filter   string
	err      error

	log *logrus.Entry
}

// NewSynchronizer starts from an already-trusted snapshot, the way the
// initial fetch arrives pre-typed from the query layer.
func NewSynchronizer(snapshot []schema.HelpRequest) *Synchronizer {
	s := &Synchronizer{
		filter: FilterAll,
		log:    logrus.WithField("prefix", "feed"),
	}
	s.Initialize(snapshot)
	return s
}

// Initialize replaces the list wholesale and clears any surfaced error.
// Called once per mount and again whenever the page snapshot is re-fetched.
func (s *Synchronizer) Initialize(snapshot []schema.HelpRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = make([]schema.HelpRequest, len(snapshot))
	copy(s.requests, snapshot)
	s.err = nil
}

// Run folds the event stream into the list until ctx is cancelled or the
// channel closes. All folding happens on this one goroutine.
func (s *Synchronizer) Run(ctx context.Context, events <-chan realtime.ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			switch event.Action {
			case realtime.ActionInsert:
				s.OnInsert(event.Record)
			case realtime.ActionUpdate:
				s.OnUpdate(event.Record)
			case realtime.ActionDelete:
				s.OnDelete(event.Record)
			default:
				s.log.WithField("action", event.Action).Warn("unknown change event action")
			}
		}
	}
}

// OnInsert validates and prepends a newly created request. An event for an
// id already present supersedes the existing entry instead of duplicating it.
func (s *Synchronizer) OnInsert(record map[string]interface{}) {
	req, err := ValidateRecord(record)
	if err != nil {
		s.log.WithField("record", record).Error("invalid request data received")

		s.mu.Lock()
		s.err = fmt.Errorf("received invalid request data")
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == req.ID {
			s.requests[i] = req
			return
		}
	}
	s.requests = append([]schema.HelpRequest{req}, s.requests...)
}

// OnUpdate validates and replaces the matching entry in place, preserving
// its position. An update for an unknown id is a no-op.
func (s *Synchronizer) OnUpdate(record map[string]interface{}) {
	req, err := ValidateRecord(record)
	if err != nil {
		s.log.WithField("record", record).Error("invalid request update received")
		return
	}

	s.replace(req)
}

// OnDelete needs only a string id; everything else in the payload is ignored.
func (s *Synchronizer) OnDelete(record map[string]interface{}) {
	id, ok := record["id"].(string)
	if !ok || id == "" {
		s.log.Error("delete event without a usable id")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.requests[:0]
	for _, req := range s.requests {
		if req.ID != id {
			kept = append(kept, req)
		}
	}
	s.requests = kept
}

// ApplyLocal reflects a confirmed local mutation immediately, without
// waiting for the event stream to echo it. Applying the same update twice
// is a no-op difference, so the optimistic path and the echo may race
// freely.
func (s *Synchronizer) ApplyLocal(updated schema.HelpRequest) {
	if !schema.IsValidUrgency(updated.UrgencyLevel) || !schema.IsValidStatus(updated.Status) {
		s.log.WithField("id", updated.ID).Error("invalid local request update")
		return
	}

	s.replace(updated)
}

func (s *Synchronizer) replace(req schema.HelpRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == req.ID {
			s.requests[i] = req
			return
		}
	}
}

// SetStatusFilter changes only the derived view, never the stored list.
func (s *Synchronizer) SetStatusFilter(filter string) error {
	if filter != FilterAll && !schema.IsValidStatus(filter) {
		return ErrInvalidFilter
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = filter
	return nil
}

// Requests returns the filtered view in stored order.
func (s *Synchronizer) Requests() []schema.HelpRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := make([]schema.HelpRequest, 0, len(s.requests))
	for _, req := range s.requests {
		if s.filter == FilterAll || req.Status == s.filter {
			view = append(view, req)
		}
	}
	return view
}

// Err reports the surfaced feed-level error, if any.
func (s *Synchronizer) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
