package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deal-tracker/internal/assistant"
	"deal-tracker/internal/model"
	"deal-tracker/pkg/response"
)

// Ask godoc
// @Summary     Ask the assistant
// @Description Answers a question about one property (isDashBoard with supporting JSON) or the whole portfolio.
// @Description The conversation is remembered per user, or per X-Conversation-ID when that header is set.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-Conversation-ID header string false "Conversation to continue"
// @Param       body body askReq true "Question"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Assistant unavailable"
// @Router      /api/v1/ai [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processAskReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.Ask(ctx, sc, req.toInput(c.GetHeader(ConversationHeader)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, askResp{Result: out.Result})
}

// Reset godoc
// @Summary     Forget the conversation
// @Description Drops the assistant's memory of the caller's conversation.
// @Tags        Assistant
// @Param       X-Conversation-ID header string false "Conversation to forget"
// @Success     204
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/ai/session [DELETE]
func (h *handler) Reset(c *gin.Context) {
	ctx := c.Request.Context()

	sc, _ := model.GetScopeFromContext(ctx)
	err := h.uc.Reset(ctx, sc, assistant.ResetInput{ConversationID: c.GetHeader(ConversationHeader)})
	if err != nil {
		h.l.Errorf(ctx, "uc.Reset: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Status(http.StatusNoContent)
}
