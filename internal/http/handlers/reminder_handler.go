// README: Reminder listing handler; creation happens through the assistant.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roost/internal/modules/reminder"
	"roost/internal/types"
)

type ReminderHandler struct {
	reminders *reminder.Service
}

func NewReminderHandler(svc *reminder.Service) *ReminderHandler {
	return &ReminderHandler{reminders: svc}
}

// List handles GET /api/reminders?userId=.
func (h *ReminderHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if !isValidID(userID) {
		writeError(c, http.StatusBadRequest, "invalid userId")
		return
	}
	rs, err := h.reminders.ListByUser(c.Request.Context(), types.ID(userID))
	if err != nil {
		writeReminderError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"data": rs})
}
