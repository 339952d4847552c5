// README: Viewing-appointment handlers for create/list/status/messages.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roost/internal/modules/appointment"
	"roost/internal/types"
)

type AppointmentHandler struct {
	appointments *appointment.Service
}

func NewAppointmentHandler(svc *appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{appointments: svc}
}

type createAppointmentReq struct {
	ListingID  string    `json:"rentalId"`
	TenantID   string    `json:"tenantId"`
	LandlordID string    `json:"landlordId"`
	ViewTime   time.Time `json:"viewTime"`
	Note       string    `json:"note"`
}

// Create handles POST /api/appointments/create.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.appointments.Create(c.Request.Context(), appointment.CreateCommand{
		ListingID:  types.ID(req.ListingID),
		TenantID:   types.ID(req.TenantID),
		LandlordID: types.ID(req.LandlordID),
		ViewTime:   req.ViewTime,
		Note:       req.Note,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"id": id, "status": appointment.StatusPending})
}

// ListByTenant handles GET /api/appointments/tenant/:id.
func (h *AppointmentHandler) ListByTenant(c *gin.Context) {
	h.listFor(c, h.appointments.ListByTenant)
}

// ListByLandlord handles GET /api/appointments/landlord/:id.
func (h *AppointmentHandler) ListByLandlord(c *gin.Context) {
	h.listFor(c, h.appointments.ListByLandlord)
}

func (h *AppointmentHandler) listFor(c *gin.Context, list func(ctx context.Context, id types.ID) ([]appointment.Appointment, error)) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	as, err := list(c.Request.Context(), types.ID(id))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"data": as})
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles POST /api/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.appointments.UpdateStatus(c.Request.Context(), types.ID(id), appointment.Status(req.Status)); err != nil {
		writeAppointmentError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"id": id, "status": req.Status})
}

type addMessageReq struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}

// AddMessage handles POST /api/appointments/:id/message.
func (h *AppointmentHandler) AddMessage(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req addMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.appointments.AddMessage(c.Request.Context(), types.ID(id), types.ID(req.Author), req.Body); err != nil {
		writeAppointmentError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"id": id})
}

type negotiateReq struct {
	Author   string    `json:"author"`
	ViewTime time.Time `json:"viewTime"`
	Note     string    `json:"note"`
}

// Negotiate handles POST /api/appointments/:id/negotiate.
func (h *AppointmentHandler) Negotiate(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req negotiateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.appointments.Negotiate(c.Request.Context(), types.ID(id), types.ID(req.Author), req.ViewTime, req.Note); err != nil {
		writeAppointmentError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"id": id, "status": appointment.StatusNegotiating})
}
