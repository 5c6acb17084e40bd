package http

import (
	"github.com/gin-gonic/gin"

	"deal-tracker/internal/model"
)

func (h *handler) processAskReq(c *gin.Context) (askReq, model.Scope, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	sc, _ := model.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
