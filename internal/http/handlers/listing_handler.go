// README: Listing handlers for browse, landlord CRUD, and the amenity catalog.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"roost/internal/modules/favorite"
	"roost/internal/modules/listing"
	"roost/internal/types"
)

type ListingHandler struct {
	listing   *listing.Service
	favorites *favorite.Service
}

func NewListingHandler(listingSvc *listing.Service, favoriteSvc *favorite.Service) *ListingHandler {
	return &ListingHandler{listing: listingSvc, favorites: favoriteSvc}
}

// ListPublished handles GET /api/rentals/public.
func (h *ListingHandler) ListPublished(c *gin.Context) {
	ls, err := h.listing.ListPublished(c.Request.Context())
	if err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"data": ls})
}

// ListByLandlord handles GET /api/rentals/list?landlordId=.
func (h *ListingHandler) ListByLandlord(c *gin.Context) {
	landlordID := c.Query("landlordId")
	if !isValidID(landlordID) {
		writeError(c, http.StatusBadRequest, "invalid landlordId")
		return
	}
	ls, err := h.listing.ListByLandlord(c.Request.Context(), types.ID(landlordID))
	if err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"data": ls})
}

// Amenities handles GET /api/rentals/amenities.
func (h *ListingHandler) Amenities(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"data": listing.Amenities})
}

// Get handles GET /api/rentals/:id and includes the favorite count for
// the detail page.
func (h *ListingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid id")
		return
	}
	l, err := h.listing.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeListingError(c, err)
		return
	}
	count, err := h.favorites.CountForListing(c.Request.Context(), l.ID)
	if err != nil {
		// The detail page is still useful without the count.
		log.Printf("favorite count for %s failed: %v", l.ID, err)
		count = 0
	}
	writeJSON(c, http.StatusOK, map[string]any{"data": l, "favoriteCount": count})
}

type createListingReq struct {
	LandlordID  string   `json:"landlordId"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Deposit     float64  `json:"deposit"`
	Floor       int      `json:"floor"`
	Area        float64  `json:"area"`
	Rooms       int      `json:"rooms"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	IsPublished bool     `json:"isPublished"`
}

// Create handles POST /api/rentals/add.
func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.listing.Create(c.Request.Context(), listing.CreateCommand{
		LandlordID:  types.ID(req.LandlordID),
		Title:       req.Title,
		Address:     req.Address,
		Type:        req.Type,
		Price:       req.Price,
		Deposit:     req.Deposit,
		Floor:       req.Floor,
		Area:        req.Area,
		Rooms:       req.Rooms,
		Amenities:   req.Amenities,
		Description: req.Description,
		Images:      req.Images,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"id": id})
}

// Update handles POST /api/rentals/update.
func (h *ListingHandler) Update(c *gin.Context) {
	var l listing.Listing
	if err := c.ShouldBindJSON(&l); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.listing.Update(c.Request.Context(), l); err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"id": l.ID})
}

type deleteListingReq struct {
	ID string `json:"id"`
}

// Delete handles POST /api/rentals/delete.
func (h *ListingHandler) Delete(c *gin.Context) {
	var req deleteListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.listing.Delete(c.Request.Context(), types.ID(req.ID)); err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"id": req.ID})
}
