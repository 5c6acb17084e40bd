package http

import (
	"github.com/gin-gonic/gin"
)

// processAccessReq binds and validates the access gate request body.
func (h *handler) processAccessReq(c *gin.Context) (accessReq, error) {
	var req accessReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
