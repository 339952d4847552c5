// README: Assistant chat handler; one classify-and-dispatch round trip per request.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roost/internal/modules/assistant"
	"roost/internal/types"
)

type AssistantHandler struct {
	assistant *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{assistant: svc}
}

type chatReq struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// Chat handles POST /api/bot/chat. Handled outcomes, including degraded
// conversational ones, are always 200 with an envelope; only
// infrastructure failures map to 500.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	// The dispatch core imposes no timeout of its own; bound latency here
	// at the boundary.
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	// now is taken per request so "明天" means tomorrow relative to this
	// message, not to process start.
	env, err := h.assistant.Respond(ctx, types.ID(req.UserID), req.Message, time.Now())
	if err != nil {
		log.Printf("assistant chat failed: %v", err)
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, env)
}
