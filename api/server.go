package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/external/geoinfo"
	"github.com/sacavia/sacavia-api/logmodule"
	"github.com/sacavia/sacavia-api/store"
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
	store      store.AccountCore
	mongoStore store.MongoStore

	// JWT public key of the session issuer. Requests are anonymous when it
	// is not set.
	jwtPublicKey *rsa.PublicKey

	// External services
	geoClient geoinfo.GeoInfo

	metrics tally.Scope

	// maximum candidate set of queries refined in memory
	candidateLimit int64

	now func() time.Time
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	jwtPublicKey *rsa.PublicKey,
	geoClient geoinfo.GeoInfo,
	metrics tally.Scope) *Server {
	if metrics == nil {
		metrics = tally.NoopScope
	}

	candidateLimit := viper.GetInt64("location.candidate_limit")
	if candidateLimit <= 0 {
		candidateLimit = consts.DefaultCandidateLimit
	}

	return &Server{
		store:          store.NewAccountStore(ormDB),
		mongoStore:     store.NewMongoStore(mongoClient, viper.GetString("mongo.database")),
		jwtPublicKey:   jwtPublicKey,
		geoClient:      geoClient,
		metrics:        metrics,
		candidateLimit: candidateLimit,
		now:            time.Now,
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

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Authorization", "Accept-Language", "Geo-Position"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := viper.GetStringSlice("cors.origins"); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}

	apiRoute := r.Group("/api/v1/mobile")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(corsConfig))
	apiRoute.Use(s.authMiddleware())
	{
		apiRoute.GET("/locations", s.getLocations)
		apiRoute.GET("/locations/:id", s.getLocation)
		apiRoute.GET("/search", s.search)
	}

	accountRoute := apiRoute.Group("")
	accountRoute.Use(s.recognizeAccountMiddleware())
	{
		accountRoute.GET("/saved-locations", s.getSavedLocations)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func (s *Server) shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	s.abortWithServerError(c, err)
	return true
}

// abortWithServerError logs and reports an unexpected failure, then
// answers with a generic server error
func (s *Server) abortWithServerError(c *gin.Context, err error) {
	log.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path,
		"error": err,
	}).Error("request failed")

	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	} else {
		sentry.CaptureException(err)
	}

	s.countError(c, codeServerError)
	abortWithEncoding(c, http.StatusInternalServerError, errorJSON(c, codeServerError), err)
}

func (s *Server) abortWithCode(c *gin.Context, code string, errors ...error) {
	s.countError(c, code)
	abortWithEncoding(c, errorStatus(code), errorJSON(c, code), errors...)
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if s.shouldInterupt(err, c) {
		return
	}

	err = s.mongoStore.Ping()
	if s.shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj interface{}) {
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
