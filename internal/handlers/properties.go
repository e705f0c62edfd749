package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homefinder/internal/database"
	"homefinder/internal/middleware"
	"homefinder/internal/models"
	"homefinder/internal/search"
	"homefinder/internal/storage"
)

// PropertyHandler handles listing search, map queries and CRUD
type PropertyHandler struct {
	store    database.Store
	uploader *storage.S3Uploader
	logger   *slog.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(store database.Store, uploader *storage.S3Uploader, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{store: store, uploader: uploader, logger: logger}
}

// Search handles GET /api/properties. With featured=N it returns the N
// newest active listings and ignores every other parameter.
func (h *PropertyHandler) Search(c *gin.Context) {
	filters, err := search.ParseFilters(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}

	if filters.Featured > 0 {
		properties, err := h.store.FeaturedProperties(filters.Featured)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, search.FeaturedResult{Data: properties, Total: int64(len(properties))})
		return
	}

	properties, total, err := h.store.SearchProperties(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, search.Page{
		Data:       properties,
		Total:      total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: search.TotalPages(total, filters.Limit),
	})
}

// MapSearch handles GET /api/properties/map. The viewport bounds are
// mandatory; results come back as a flat list capped at a fixed size so
// the map never renders an unbounded pin set.
func (h *PropertyHandler) MapSearch(c *gin.Context) {
	filters, err := search.ParseFilters(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	if !filters.HasBounds() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Map queries require north, south, east and west"})
		return
	}
	filters.Page = 1
	filters.Limit = search.MapResultLimit

	properties, total, err := h.store.SearchProperties(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": properties, "total": total})
}

// Get handles GET /api/properties/:id. Listings that are not active stay
// hidden from everyone except their owner and admins.
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.store.GetProperty(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if !property.IsActive() {
		userID, _ := middleware.UserID(c)
		if userID != property.OwnerID && !h.isAdmin(userID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
	}
	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) isAdmin(userID string) bool {
	if userID == "" {
		return false
	}
	profile, err := h.store.GetProfile(userID)
	return err == nil && profile.Role == models.RoleAdmin
}

// MyProperties handles GET /api/my/properties for owners reviewing their
// own portfolio, drafts included. The search filters apply within it.
func (h *PropertyHandler) MyProperties(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	filters, err := search.ParseFilters(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	properties, err := h.store.OwnerProperties(viewer.UserID, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": properties, "total": len(properties)})
}

type propertyRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	PropertyType  *string  `json:"property_type"`
	ListingType   *string  `json:"listing_type"`
	Status        *string  `json:"status"`
	Price         *float64 `json:"price"`
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	State         *string  `json:"state"`
	ZipCode       *string  `json:"zip_code"`
	Country       *string  `json:"country"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Bedrooms      *int     `json:"bedrooms"`
	Bathrooms     *float64 `json:"bathrooms"`
	Sqft          *int     `json:"sqft"`
	LotSize       *int     `json:"lot_size"`
	YearBuilt     *int     `json:"year_built"`
	ParkingSpaces *int     `json:"parking_spaces"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

func (r *propertyRequest) validateEnums() (string, bool) {
	if r.PropertyType != nil && !models.ValidPropertyType(*r.PropertyType) {
		return "Invalid property_type", false
	}
	if r.ListingType != nil && !models.ValidListingType(*r.ListingType) {
		return "Invalid listing_type", false
	}
	if r.Status != nil && !models.ValidPropertyStatus(*r.Status) {
		return "Invalid status", false
	}
	if r.Price != nil && *r.Price < 0 {
		return "Price must not be negative", false
	}
	return "", true
}

// Create handles POST /api/properties. Buyers cannot list; owners and
// admins can.
func (h *PropertyHandler) Create(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	if !viewer.Role.CanList() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only owners can create listings"})
		return
	}

	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg, ok := req.validateEnums(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if req.PropertyType == nil || req.ListingType == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_type and listing_type are required"})
		return
	}
	if req.Price == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price is required"})
		return
	}
	if req.Address == nil || strings.TrimSpace(*req.Address) == "" ||
		req.City == nil || strings.TrimSpace(*req.City) == "" ||
		req.State == nil || strings.TrimSpace(*req.State) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address, city and state are required"})
		return
	}

	property := models.Property{
		OwnerID:      viewer.UserID,
		Title:        strings.TrimSpace(*req.Title),
		PropertyType: models.PropertyType(*req.PropertyType),
		ListingType:  models.ListingType(*req.ListingType),
		Price:        *req.Price,
		Amenities:    req.Amenities,
		Images:       req.Images,
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Status != nil {
		property.Status = models.PropertyStatus(*req.Status)
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.State != nil {
		property.State = *req.State
	}
	if req.ZipCode != nil {
		property.ZipCode = *req.ZipCode
	}
	if req.Country != nil {
		property.Country = *req.Country
	}
	property.Latitude = req.Latitude
	property.Longitude = req.Longitude
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.Sqft = req.Sqft
	property.LotSize = req.LotSize
	property.YearBuilt = req.YearBuilt
	property.ParkingSpaces = req.ParkingSpaces

	if err := h.store.CreateProperty(&property); err != nil {
		respondError(c, err)
		return
	}
	created, err := h.store.GetProperty(property.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.logger.Info("listing created", "property_id", property.ID, "owner_id", viewer.UserID)
	c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /api/properties/:id. Only the owner or an admin may
// edit, and only whitelisted fields are written.
func (h *PropertyHandler) Update(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	property, err := h.store.GetProperty(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if property.OwnerID != viewer.UserID && viewer.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your listing"})
		return
	}

	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg, ok := req.validateEnums(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title must not be empty"})
			return
		}
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.PropertyType != nil {
		fields["property_type"] = *req.PropertyType
	}
	if req.ListingType != nil {
		fields["listing_type"] = *req.ListingType
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.City != nil {
		fields["city"] = *req.City
	}
	if req.State != nil {
		fields["state"] = *req.State
	}
	if req.ZipCode != nil {
		fields["zip_code"] = *req.ZipCode
	}
	if req.Country != nil {
		fields["country"] = *req.Country
	}
	if req.Latitude != nil {
		fields["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		fields["longitude"] = *req.Longitude
	}
	if req.Bedrooms != nil {
		fields["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		fields["bathrooms"] = *req.Bathrooms
	}
	if req.Sqft != nil {
		fields["sqft"] = *req.Sqft
	}
	if req.LotSize != nil {
		fields["lot_size"] = *req.LotSize
	}
	if req.YearBuilt != nil {
		fields["year_built"] = *req.YearBuilt
	}
	if req.ParkingSpaces != nil {
		fields["parking_spaces"] = *req.ParkingSpaces
	}

	updated, err := h.store.UpdateProperty(property.ID, fields, req.Amenities, req.Images)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/properties/:id. Stored images are removed
// from object storage on a best-effort basis after the row is gone.
func (h *PropertyHandler) Delete(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	property, err := h.store.GetProperty(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if property.OwnerID != viewer.UserID && viewer.Role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your listing"})
		return
	}

	if err := h.store.DeleteProperty(property.ID); err != nil {
		respondError(c, err)
		return
	}

	if h.uploader != nil {
		for _, url := range property.Images {
			if err := h.uploader.Remove(context.Background(), url); err != nil {
				h.logger.Warn("image cleanup failed", "property_id", property.ID, "url", url, "error", err)
			}
		}
	}
	h.logger.Info("listing deleted", "property_id", property.ID, "by", viewer.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted"})
}
