package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homefinder/internal/database"
	"homefinder/internal/models"
	"homefinder/internal/notify"
)

// EnquiryHandler handles buyer-to-owner enquiries
type EnquiryHandler struct {
	store    database.Store
	notifier *notify.Notifier
	logger   *slog.Logger
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(store database.Store, notifier *notify.Notifier, logger *slog.Logger) *EnquiryHandler {
	return &EnquiryHandler{store: store, notifier: notifier, logger: logger}
}

type createEnquiryRequest struct {
	PropertyID    string  `json:"property_id"`
	Message       string  `json:"message"`
	Phone         *string `json:"phone"`
	PreferredDate *string `json:"preferred_date"`
}

// Create handles POST /api/enquiries. Sending an enquiry about your own
// listing is rejected.
func (h *EnquiryHandler) Create(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}

	var req createEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.PropertyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_id is required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	property, err := h.store.GetProperty(req.PropertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	if property.OwnerID == viewer.UserID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot enquire about your own listing"})
		return
	}

	enquiry := models.Enquiry{
		PropertyID:    property.ID,
		SenderID:      viewer.UserID,
		OwnerID:       property.OwnerID,
		Message:       strings.TrimSpace(req.Message),
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
	}
	if err := h.store.CreateEnquiry(&enquiry); err != nil {
		respondError(c, err)
		return
	}

	if h.notifier.Enabled() {
		if owner, err := h.store.GetProfile(property.OwnerID); err == nil && owner.Email != "" {
			go h.notifier.EnquiryReceived(context.Background(), owner.Email, property, &enquiry)
		}
	}

	h.logger.Info("enquiry created", "enquiry_id", enquiry.ID, "property_id", property.ID)
	c.JSON(http.StatusCreated, enquiry)
}

// List handles GET /api/enquiries. Buyers see what they sent, owners see
// what their listings received, admins see everything.
func (h *EnquiryHandler) List(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	enquiries, err := h.store.ListEnquiries(viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": enquiries, "total": len(enquiries)})
}

type updateEnquiryRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/enquiries/:id. Only the receiving owner
// or an admin may move an enquiry through its lifecycle.
func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}

	var req updateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if !models.ValidEnquiryStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	enquiry, err := h.store.GetEnquiry(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if enquiry.OwnerID != viewer.UserID && viewer.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your enquiry"})
		return
	}

	if err := h.store.UpdateEnquiryStatus(enquiry.ID, models.EnquiryStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}
