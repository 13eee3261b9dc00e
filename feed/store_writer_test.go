package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	storemocks "github.com/helpconnect/helpconnect-api/api/mocks"
	"github.com/helpconnect/helpconnect-api/feed"
	"github.com/helpconnect/helpconnect-api/realtime"
	"github.com/helpconnect/helpconnect-api/schema"
)

var writerTestUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// subscribeToHub attaches a live feed subscription to a running hub and
// returns the event channel.
func subscribeToHub(t *testing.T, ctx context.Context, hub *realtime.Hub) (<-chan realtime.ChangeEvent, func()) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := writerTestUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.ServeConn(conn)
	}))

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	events, err := realtime.Subscribe(ctx, wsURL, "")
	assert.NoError(t, err)

	// give ServeConn a beat to register before any write
	time.Sleep(50 * time.Millisecond)

	return events, server.Close
}

func TestStoreWriterInsertPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storemocks.NewMockHelpConnectCore(ctrl)
	store.EXPECT().
		CreateRequest(gomock.Any()).
		DoAndReturn(func(req schema.HelpRequest) (*schema.HelpRequest, error) {
			created := req
			created.ID = "req-1"
			return &created, nil
		})

	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	events, teardown := subscribeToHub(t, ctx, hub)
	defer teardown()

	writer := feed.NewStoreWriter(store, hub, "user-1")
	created, err := writer.Insert(context.Background(), *storedHelpRequest("", "user-1"))
	assert.NoError(t, err)
	if assert.NotNil(t, created) {
		assert.Equal(t, "req-1", created.ID)
	}

	select {
	case event := <-events:
		assert.Equal(t, realtime.ActionInsert, event.Action)
		assert.Equal(t, "req-1", event.Record["id"])
	case <-time.After(time.Second):
		t.Fatal("no insert event delivered")
	}
}

func TestStoreWriterUpdatePublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updated := storedHelpRequest("req-1", "user-1")
	updated.Status = schema.StatusCompleted

	store := storemocks.NewMockHelpConnectCore(ctrl)
	store.EXPECT().
		UpdateRequest("req-1", "user-1", gomock.Any()).
		Return(updated, nil)

	hub := realtime.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	events, teardown := subscribeToHub(t, ctx, hub)
	defer teardown()

	writer := feed.NewStoreWriter(store, hub, "user-1")
	err := writer.Update(context.Background(), "req-1", map[string]interface{}{
		"status": schema.StatusCompleted,
	})
	assert.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, realtime.ActionUpdate, event.Action)
		assert.Equal(t, "completed", event.Record["status"])
	case <-time.After(time.Second):
		t.Fatal("no update event delivered")
	}
}

func storedHelpRequest(id, userID string) *schema.HelpRequest {
	return &schema.HelpRequest{
		ID:           id,
		UserID:       userID,
		Title:        "Need a hand",
		Description:  "Any help appreciated",
		Category:     "General Help",
		UrgencyLevel: schema.UrgencyMedium,
		Status:       schema.StatusOpen,
	}
}
