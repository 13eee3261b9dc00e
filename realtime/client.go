package realtime

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
)

// Subscribe dials a live feed endpoint and delivers its change events on a
// channel until ctx is cancelled or the connection drops. The returned
// channel is closed on teardown so consumers can range over it.
func Subscribe(ctx context.Context, endpoint, token string) (<-chan ChangeEvent, error) {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		return nil, err
	}

	events := make(chan ChangeEvent)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go func() {
		defer close(events)
		defer conn.Close()

		for {
			var event ChangeEvent
			if err := conn.ReadJSON(&event); err != nil {
				if ctx.Err() == nil {
					log.WithError(err).Warn("live feed connection closed")
				}
				return
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}
