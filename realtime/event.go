package realtime

import (
	"encoding/json"

	"github.com/helpconnect/helpconnect-api/schema"
)

// Action discriminates help-request change events.
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// ChangeEvent is a single change notification for the help-request
// collection. Record is deliberately untyped: subscribers must not trust
// its shape before validating it.
type ChangeEvent struct {
	Action Action                 `json:"action"`
	Record map[string]interface{} `json:"record"`
}

func recordOf(req schema.HelpRequest) map[string]interface{} {
	b, err := json.Marshal(req)
	if err != nil {
		return nil
	}

	var record map[string]interface{}
	if err := json.Unmarshal(b, &record); err != nil {
		return nil
	}
	return record
}

// NewInsertEvent builds the event published when a request is created.
func NewInsertEvent(req schema.HelpRequest) ChangeEvent {
	return ChangeEvent{
		Action: ActionInsert,
		Record: recordOf(req),
	}
}

// NewUpdateEvent builds the event published when a request is mutated.
func NewUpdateEvent(req schema.HelpRequest) ChangeEvent {
	return ChangeEvent{
		Action: ActionUpdate,
		Record: recordOf(req),
	}
}

// NewDeleteEvent carries only the identifier of the removed request.
func NewDeleteEvent(id string) ChangeEvent {
	return ChangeEvent{
		Action: ActionDelete,
		Record: map[string]interface{}{"id": id},
	}
}
