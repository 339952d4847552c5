// README: Favorite handlers for add/remove/list/check.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roost/internal/modules/favorite"
	"roost/internal/types"
)

type FavoriteHandler struct {
	favorites *favorite.Service
}

func NewFavoriteHandler(svc *favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favorites: svc}
}

type addFavoriteReq struct {
	UserID    string `json:"userId"`
	ListingID string `json:"rentalId"`
}

// Add handles POST /api/favorites.
func (h *FavoriteHandler) Add(c *gin.Context) {
	var req addFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !isValidID(req.UserID) || !isValidID(req.ListingID) {
		writeError(c, http.StatusBadRequest, "invalid userId or rentalId")
		return
	}
	if err := h.favorites.Add(c.Request.Context(), types.ID(req.UserID), types.ID(req.ListingID)); err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"ok": true})
}

// Remove handles DELETE /api/favorites/:id.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	if err := h.favorites.Remove(c.Request.Context(), types.ID(id)); err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"ok": true})
}

// List handles GET /api/favorites?userId=.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID := c.Query("userId")
	if !isValidID(userID) {
		writeError(c, http.StatusBadRequest, "invalid userId")
		return
	}
	fs, err := h.favorites.ListByUser(c.Request.Context(), types.ID(userID))
	if err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"data": fs})
}

// Check handles GET /api/favorites/check?userId=&rentalId=.
func (h *FavoriteHandler) Check(c *gin.Context) {
	userID, listingID := c.Query("userId"), c.Query("rentalId")
	if !isValidID(userID) || !isValidID(listingID) {
		writeError(c, http.StatusBadRequest, "invalid userId or rentalId")
		return
	}
	favorited, err := h.favorites.IsFavorited(c.Request.Context(), types.ID(userID), types.ID(listingID))
	if err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"favorited": favorited})
}
