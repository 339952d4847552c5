// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roost/internal/modules/appointment"
	"roost/internal/modules/favorite"
	"roost/internal/modules/listing"
	"roost/internal/modules/reminder"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures IDs are alphanumeric and at most 32 chars (matches
// the ID generator).
func isValidID(v string) bool {
	if v == "" || len(v) > 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, listing.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, listing.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeFavoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, favorite.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, favorite.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeReminderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reminder.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, appointment.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, appointment.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, appointment.ErrInvalidState):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
