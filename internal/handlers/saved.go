package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homefinder/internal/database"
)

// SavedHandler handles per-user saved listings
type SavedHandler struct {
	store database.Store
}

// NewSavedHandler creates a new saved-listings handler
func NewSavedHandler(store database.Store) *SavedHandler {
	return &SavedHandler{store: store}
}

// List handles GET /api/saved
func (h *SavedHandler) List(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	saved, err := h.store.ListSaved(viewer.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": saved, "total": len(saved)})
}

// Save handles POST /api/saved/:propertyId. Saving twice returns a
// conflict.
func (h *SavedHandler) Save(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	propertyID := c.Param("propertyId")
	if _, err := h.store.GetProperty(propertyID); err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.SaveListing(viewer.UserID, propertyID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Listing saved"})
}

// Unsave handles DELETE /api/saved/:propertyId. Removing a listing that
// was never saved still succeeds.
func (h *SavedHandler) Unsave(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	if err := h.store.UnsaveListing(viewer.UserID, c.Param("propertyId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing removed"})
}
