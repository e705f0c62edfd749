package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homefinder/internal/database"
	"homefinder/internal/seed"
)

// SeedHandler handles demo-data endpoints. Populating an environment is a
// listing operation, so the same role gate as Create applies.
type SeedHandler struct {
	store  database.Store
	logger *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(store database.Store, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{store: store, logger: logger}
}

// SeedCurated handles POST /api/seed. It loads the hand-written Ottawa
// listings and assigns them to the caller.
func (h *SeedHandler) SeedCurated(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	if !viewer.Role.CanList() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only owners can seed listings"})
		return
	}

	properties := seed.Ottawa()
	for i := range properties {
		properties[i].OwnerID = viewer.UserID
	}
	if err := h.store.BulkInsertProperties(properties); err != nil {
		respondError(c, err)
		return
	}
	h.logger.Info("curated seed loaded", "count", len(properties), "owner_id", viewer.UserID)
	c.JSON(http.StatusCreated, gin.H{"message": "Seed data loaded", "count": len(properties)})
}

// SeedGenerated handles POST /api/seed/generated. It produces the
// deterministic multi-city dataset; running it twice yields identical
// listings apart from their generated ids. An optional cities query
// parameter limits how many metro areas are seeded.
func (h *SeedHandler) SeedGenerated(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	if !viewer.Role.CanList() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only owners can seed listings"})
		return
	}

	cityCount := seed.CityCount()
	if raw := c.Query("cities"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > seed.CityCount() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("cities must be between 1 and %d", seed.CityCount())})
			return
		}
		cityCount = n
	}

	properties := seed.GenerateCities(cityCount)
	for i := range properties {
		properties[i].OwnerID = viewer.UserID
	}
	if err := h.store.BulkInsertProperties(properties); err != nil {
		respondError(c, err)
		return
	}
	h.logger.Info("generated seed loaded", "count", len(properties), "owner_id", viewer.UserID)
	c.JSON(http.StatusCreated, gin.H{"message": "Seed data generated", "count": len(properties)})
}
