package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uber-go/tally"
)

const endpointKey = "endpoint"

func (s *Server) endpointScope(c *gin.Context) tally.Scope {
	endpoint := c.GetString(endpointKey)
	if endpoint == "" {
		endpoint = "unknown"
	}

	if s.metrics == nil {
		return tally.NoopScope
	}
	return s.metrics.Tagged(map[string]string{endpointKey: endpoint})
}

// track marks the request as served by an endpoint and counts it
func (s *Server) track(c *gin.Context, endpoint string) {
	c.Set(endpointKey, endpoint)
	s.endpointScope(c).Counter("requests").Inc(1)
}

func (s *Server) countError(c *gin.Context, code string) {
	s.endpointScope(c).Tagged(map[string]string{"code": code}).Counter("errors").Inc(1)
}

func (s *Server) countCapped(c *gin.Context) {
	s.endpointScope(c).Counter("candidates_capped").Inc(1)
}

func (s *Server) recordPipeline(c *gin.Context, started time.Time) {
	s.endpointScope(c).Timer("pipeline").Record(time.Since(started))
}
