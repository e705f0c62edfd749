package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"homefinder/internal/database"
	"homefinder/internal/models"
)

// UserHandler handles profile reads and updates
type UserHandler struct {
	store database.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(store database.Store) *UserHandler {
	return &UserHandler{store: store}
}

// Me handles GET /api/me. A profile is provisioned on first contact.
func (h *UserHandler) Me(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}
	profile, err := h.store.GetProfile(viewer.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type registerRequest struct {
	Role     string  `json:"role"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
}

// Register handles POST /api/me, the signup completion step. The role is
// picked here, once; afterwards only an admin can change it.
func (h *UserHandler) Register(c *gin.Context) {
	userID, email, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	role := models.RoleBuyer
	if req.Role != "" {
		if !models.ValidRole(req.Role) || models.Role(req.Role) == models.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be buyer or owner"})
			return
		}
		role = models.Role(req.Role)
	}

	if _, err := h.store.GetProfile(userID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Profile already exists"})
		return
	} else if !errors.Is(err, database.ErrNotFound) {
		respondError(c, err)
		return
	}

	profile := &models.Profile{UserID: userID, Role: role, Email: email}
	if req.FullName != nil {
		profile.FullName = strings.TrimSpace(*req.FullName)
	}
	profile.Phone = req.Phone
	if err := h.store.UpsertProfile(profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

type updateProfileRequest struct {
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Phone     *string `json:"phone"`
	Bio       *string `json:"bio"`
}

// UpdateMe handles PATCH /api/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	viewer, ok := currentViewer(h.store, c)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	profile, err := h.store.UpdateProfile(viewer.UserID, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile handles GET /api/users/:id, the public card shown next to a
// listing. Contact details stay private.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":    profile.UserID,
		"role":       profile.Role,
		"full_name":  profile.FullName,
		"avatar_url": profile.AvatarURL,
		"bio":        profile.Bio,
	})
}
