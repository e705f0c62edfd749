package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"homefinder/internal/database"
	"homefinder/internal/models"
	"homefinder/internal/storage"
)

const (
	maxImageBytes     = 5 << 20
	uploadConcurrency = 4
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageHandler handles listing image uploads
type ImageHandler struct {
	store    database.Store
	uploader *storage.S3Uploader
	logger   *slog.Logger
}

// NewImageHandler creates a new image handler
func NewImageHandler(store database.Store, uploader *storage.S3Uploader, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{store: store, uploader: uploader, logger: logger}
}

// Upload handles POST /api/properties/:id/images. Files are pushed to
// object storage with bounded concurrency, then their URLs are appended
// to the listing in the order the files were sent.
func (h *ImageHandler) Upload(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	if h.uploader == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage is not configured"})
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

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images in request"})
		return
	}
	if len(files)+len(property.Images) > database.MaxImagesPerProperty {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("A listing can have at most %d images", database.MaxImagesPerProperty)})
		return
	}
	for _, f := range files {
		if f.Size > maxImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s exceeds the 5 MiB limit", f.Filename)})
			return
		}
		contentType := f.Header.Get("Content-Type")
		if _, ok := allowedImageTypes[contentType]; !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s has unsupported type %q", f.Filename, contentType)})
			return
		}
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))
	sem := make(chan struct{}, uploadConcurrency)
	var wg sync.WaitGroup

	for i, f := range files {
		wg.Add(1)
		go func(i int, f *multipart.FileHeader) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			urls[i], errs[i] = h.uploadOne(c.Request.Context(), property.ID, f)
		}(i, f)
	}
	wg.Wait()

	uploaded := make([]string, 0, len(files))
	for i, err := range errs {
		if err != nil {
			h.logger.Warn("image upload failed", "property_id", property.ID, "file", files[i].Filename, "error", err)
			continue
		}
		uploaded = append(uploaded, urls[i])
	}
	if len(uploaded) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image upload failed"})
		return
	}

	if err := h.store.AppendPropertyImages(property.ID, uploaded); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"urls": uploaded, "uploaded": len(uploaded), "failed": len(files) - len(uploaded)})
}

func (h *ImageHandler) uploadOne(ctx context.Context, propertyID string, f *multipart.FileHeader) (string, error) {
	src, err := f.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := f.Header.Get("Content-Type")
	ext := allowedImageTypes[contentType]
	if e := strings.ToLower(path.Ext(f.Filename)); e != "" {
		ext = e
	}
	key := fmt.Sprintf("properties/%s/%s%s", propertyID, uuid.NewString(), ext)
	return h.uploader.Upload(ctx, key, src, contentType)
}

type removeImageRequest struct {
	URL string `json:"url"`
}

// Remove handles DELETE /api/properties/:id/images
func (h *ImageHandler) Remove(c *gin.Context) {
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

	var req removeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	if err := h.store.RemovePropertyImage(property.ID, req.URL); err != nil {
		respondError(c, err)
		return
	}
	if h.uploader != nil {
		if err := h.uploader.Remove(c.Request.Context(), req.URL); err != nil {
			h.logger.Warn("object delete failed", "property_id", property.ID, "url", req.URL, "error", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image removed"})
}
