package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/suite"

	"github.com/helpconnect/helpconnect-api/api/mocks"
	"github.com/helpconnect/helpconnect-api/schema"
	"github.com/helpconnect/helpconnect-api/store"
)

type MessageAPITestSuite struct {
	suite.Suite

	ctrl   *gomock.Controller
	store  *mocks.MockHelpConnectCore
	server *Server
	router *gin.Engine
}

func (s *MessageAPITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *MessageAPITestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockHelpConnectCore(s.ctrl)
	s.server = &Server{store: s.store}

	s.router = gin.New()
	s.router.Use(func(c *gin.Context) {
		c.Set("requester", "user-1")
	})
	s.router.POST("/messages", s.server.sendMessage)
	s.router.GET("/messages", s.server.listMessages)
	s.router.PATCH("/messages/:messageID/read", s.server.markMessageRead)
}

func (s *MessageAPITestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MessageAPITestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *MessageAPITestSuite) TestSendMessage() {
	s.store.EXPECT().
		GetAccount("user-2").
		Return(&schema.Account{ID: "user-2"}, nil)
	s.store.EXPECT().
		CreateMessage("user-1", "user-2", "I can help with that").
		Return(&schema.Message{ID: "msg-1", SenderID: "user-1", ReceiverID: "user-2", Content: "I can help with that"}, nil)

	w := s.do("POST", "/messages", `{"receiver_id": "user-2", "content": "I can help with that"}`)
	s.Equal(http.StatusOK, w.Code)

	var m schema.Message
	s.NoError(json.Unmarshal(w.Body.Bytes(), &m))
	s.Equal("msg-1", m.ID)
}

func (s *MessageAPITestSuite) TestSendMessageUnknownReceiver() {
	s.store.EXPECT().
		GetAccount("ghost").
		Return(nil, gorm.ErrRecordNotFound)

	w := s.do("POST", "/messages", `{"receiver_id": "ghost", "content": "hello?"}`)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *MessageAPITestSuite) TestListMessages() {
	s.store.EXPECT().
		ListMessages("user-1").
		Return([]schema.Message{
			{ID: "msg-2", SenderID: "user-2", ReceiverID: "user-1", Content: "still need help?"},
			{ID: "msg-1", SenderID: "user-1", ReceiverID: "user-2", Content: "I can help with that"},
		}, nil)

	w := s.do("GET", "/messages", "")
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Messages []schema.Message `json:"messages"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp.Messages, 2)
}

func (s *MessageAPITestSuite) TestMarkMessageRead() {
	s.store.EXPECT().
		MarkMessageRead("msg-2", "user-1").
		Return(nil)

	w := s.do("PATCH", "/messages/msg-2/read", "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *MessageAPITestSuite) TestMarkMessageReadNotReceiver() {
	s.store.EXPECT().
		MarkMessageRead("msg-1", "user-1").
		Return(store.ErrMessageNotExist)

	w := s.do("PATCH", "/messages/msg-1/read", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func TestMessageAPITestSuite(t *testing.T) {
	suite.Run(t, new(MessageAPITestSuite))
}
