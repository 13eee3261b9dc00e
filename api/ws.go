package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveFeed upgrades the connection and attaches it to the change-event hub.
// The caller went through the auth middleware already; the stream itself is
// read-only for the peer.
func (s *Server) liveFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Error("ws upgrade error")
		return
	}

	s.hub.ServeConn(conn)
}
