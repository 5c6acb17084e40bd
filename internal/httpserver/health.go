package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "deal-tracker/pkg/errors"
	"deal-tracker/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "deal-tracker"
)

var errNotReady = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")

type healthResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Version: HealthVersion, Service: ServiceName}
}

// healthCheck godoc
// @Summary Health Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready once the database answers a ping.
// @Summary Readiness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Failure 503 {object} response.Resp "Database unavailable"
// @Router  /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck ping: %v", err)
		response.Error(c, errNotReady)
		return
	}
	response.OK(c, newHealthResp("ready"))
}

// liveCheck godoc
// @Summary Liveness Check
// @Tags    Health
// @Produce json
// @Success 200 {object} healthResp
// @Router  /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
