package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/RichardKnop/machinery/v1"

	"github.com/helpconnect/helpconnect-api/external/geocoding"
	"github.com/helpconnect/helpconnect-api/logmodule"
	"github.com/helpconnect/helpconnect-api/realtime"
	"github.com/helpconnect/helpconnect-api/schema"
	"github.com/helpconnect/helpconnect-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store    store.HelpConnectCore
	geoCache store.GeoCache

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// External services
	geocoder geocoding.Geocoder

	// live feed fan-out
	hub *realtime.Hub

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server
}

// NewServer new instance of server
func NewServer(
	s store.HelpConnectCore,
	geoCache store.GeoCache,
	jwtKey *rsa.PrivateKey,
	geocoder geocoding.Geocoder,
	hub *realtime.Hub,
	backgroundEnqueuer *machinery.Server) *Server {
	return &Server{
		store:              s,
		geoCache:           geoCache,
		jwtPrivateKey:      jwtKey,
		geocoder:           geocoder,
		hub:                hub,
		backgroundEnqueuer: backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/signup", s.signup)
		authRoute.POST("/login", s.login)
	}

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me", s.accountUpdateProfile)
		accountRoute.DELETE("/me", s.accountDelete)
		accountRoute.GET("/:accountID", s.accountPublicProfile)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/:requestID", s.getRequest)
		requestRoute.PATCH("/:requestID", s.editRequest)
		requestRoute.PATCH("/:requestID/status", s.changeRequestStatus)
		requestRoute.PATCH("/:requestID/urgency", s.changeRequestUrgency)
		requestRoute.DELETE("/:requestID", s.deleteRequest)
	}

	messageRoute := apiRoute.Group("/messages")
	{
		messageRoute.POST("", s.sendMessage)
		messageRoute.GET("", s.listMessages)
		messageRoute.PATCH("/:messageID/read", s.markMessageRead)
	}

	geoRoute := apiRoute.Group("/geo")
	{
		geoRoute.GET("/resolve", s.resolveAddress)
	}

	feedRoute := apiRoute.Group("/feed")
	{
		feedRoute.GET("/live", s.liveFeed)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if s.geoCache != nil {
		if err := s.geoCache.Ping(); shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"categories":     schema.Categories,
			"urgency_levels": schema.UrgencyLabels,
			"system_version": "HelpConnect 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
