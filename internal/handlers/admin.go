package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"homefinder/internal/cleanup"
	"homefinder/internal/database"
	"homefinder/internal/models"
	"homefinder/internal/snapshot"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	store           database.Store
	snapshotService *snapshot.Service
	cleanupService  *cleanup.Service
	retentionDays   int
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store database.Store, snap *snapshot.Service, clean *cleanup.Service, retentionDays int) *AdminHandler {
	return &AdminHandler{
		store:           store,
		snapshotService: snap,
		cleanupService:  clean,
		retentionDays:   retentionDays,
	}
}

// requireAdmin resolves the viewer and rejects everyone below admin.
func (h *AdminHandler) requireAdmin(c *gin.Context) (models.Viewer, bool) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return models.Viewer{}, false
	}
	if viewer.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access only"})
		return models.Viewer{}, false
	}
	return viewer, true
}

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}
	stats, err := h.store.PlatformStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetListings handles GET /api/admin/listings. Unlike public search it
// shows every status and attaches owner profiles.
func (h *AdminHandler) GetListings(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	properties, total, err := h.store.AllProperties(limit, (page-1)*limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  properties,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetStatsHistory handles GET /api/admin/stats/history
func (h *AdminHandler) GetStatsHistory(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	snaps, err := h.snapshotService.Recent(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": snaps, "total": len(snaps)})
}

// CaptureSnapshot handles POST /api/admin/stats/snapshot for capturing a
// snapshot outside the nightly schedule.
func (h *AdminHandler) CaptureSnapshot(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}
	if err := h.snapshotService.CaptureDaily(); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Snapshot captured"})
}

// RunCleanup handles POST /api/admin/cleanup
func (h *AdminHandler) RunCleanup(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}
	days := h.retentionDays
	if v := c.Query("retention_days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid retention_days"})
			return
		}
		days = parsed
	}
	result, err := h.cleanupService.Run(cleanup.Config{RetentionDays: days})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole handles PATCH /api/admin/users/:id/role
func (h *AdminHandler) SetRole(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}
	if err := h.store.SetRole(c.Param("id"), models.Role(req.Role)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated"})
}
