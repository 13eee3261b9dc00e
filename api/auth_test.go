package api

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/helpconnect/helpconnect-api/api/mocks"
	"github.com/helpconnect/helpconnect-api/schema"
	"github.com/helpconnect/helpconnect-api/store"
)

type AuthAPITestSuite struct {
	suite.Suite

	ctrl   *gomock.Controller
	store  *mocks.MockHelpConnectCore
	server *Server
	router *gin.Engine
}

func (s *AuthAPITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *AuthAPITestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockHelpConnectCore(s.ctrl)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)

	s.server = &Server{
		store:         s.store,
		jwtPrivateKey: key,
	}

	s.router = gin.New()
	s.router.POST("/auth/signup", s.server.signup)
	s.router.POST("/auth/login", s.server.login)

	authed := s.router.Group("/")
	authed.Use(s.server.authMiddleware())
	authed.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"requester": c.GetString("requester")})
	})
}

func (s *AuthAPITestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthAPITestSuite) post(path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthAPITestSuite) TestSignup() {
	s.store.EXPECT().
		CreateAccount("helper@example.com", gomock.Any(), "helper").
		DoAndReturn(func(email, passwordHash, username string) (*schema.Account, error) {
			// the raw password never reaches the store
			s.NoError(bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("correct horse battery")))
			return &schema.Account{ID: "acct-1", Email: email, Username: username}, nil
		})

	w := s.post("/auth/signup", `{
		"email": "helper@example.com",
		"password": "correct horse battery",
		"username": "helper"
	}`)

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		JWTToken string  `json:"jwt_token"`
		ExpireIn float64 `json:"expire_in"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.NotEmpty(resp.JWTToken)
	s.True(resp.ExpireIn > 0)
}

func (s *AuthAPITestSuite) TestSignupShortPassword() {
	w := s.post("/auth/signup", `{
		"email": "helper@example.com",
		"password": "short",
		"username": "helper"
	}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthAPITestSuite) TestSignupEmailTaken() {
	s.store.EXPECT().
		CreateAccount("helper@example.com", gomock.Any(), "helper").
		Return(nil, store.ErrAccountTaken)

	w := s.post("/auth/signup", `{
		"email": "helper@example.com",
		"password": "correct horse battery",
		"username": "helper"
	}`)

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *AuthAPITestSuite) TestLoginAndAuthMiddleware() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	s.store.EXPECT().
		GetAccountByEmail("helper@example.com").
		Return(&schema.Account{ID: "acct-1", Email: "helper@example.com", PasswordHash: string(hashed)}, nil)

	w := s.post("/auth/login", `{
		"email": "helper@example.com",
		"password": "correct horse battery"
	}`)
	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		JWTToken string `json:"jwt_token"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().NotEmpty(resp.JWTToken)

	// the issued token authenticates follow-up calls as the account
	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", resp.JWTToken))
	s.router.ServeHTTP(recorder, req)

	s.Equal(http.StatusOK, recorder.Code)
	var who struct {
		Requester string `json:"requester"`
	}
	s.NoError(json.Unmarshal(recorder.Body.Bytes(), &who))
	s.Equal("acct-1", who.Requester)
}

func (s *AuthAPITestSuite) TestLoginWrongPassword() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.DefaultCost)
	s.Require().NoError(err)

	s.store.EXPECT().
		GetAccountByEmail("helper@example.com").
		Return(&schema.Account{ID: "acct-1", PasswordHash: string(hashed)}, nil)

	w := s.post("/auth/login", `{
		"email": "helper@example.com",
		"password": "wrong password"
	}`)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthAPITestSuite) TestLoginUnknownEmail() {
	s.store.EXPECT().
		GetAccountByEmail("stranger@example.com").
		Return(nil, store.ErrAccountNotFound)

	w := s.post("/auth/login", `{
		"email": "stranger@example.com",
		"password": "whatever else"
	}`)

	// indistinguishable from a wrong password
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthAPITestSuite) TestAuthMiddlewareRejectsGarbage() {
	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	s.router.ServeHTTP(recorder, req)

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func TestAuthAPITestSuite(t *testing.T) {
	suite.Run(t, new(AuthAPITestSuite))
}
