// Package handlers contains the HTTP layer. Each handler type owns one
// resource family and talks to the store through the database.Store
// interface, so the same handlers run against MySQL and PostgreSQL.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"homefinder/internal/database"
	"homefinder/internal/middleware"
	"homefinder/internal/models"
	"homefinder/internal/search"
)

// respondError maps store and validation errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var ve *search.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, database.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, database.ErrTooManyImages):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("A listing can have at most %d images", database.MaxImagesPerProperty)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// callerIdentity returns the authenticated subject and email claim,
// rejecting anonymous requests.
func callerIdentity(c *gin.Context) (string, string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", "", false
	}
	return userID, middleware.UserEmail(c), true
}

// currentViewer resolves the authenticated user into a viewer with a role.
// First-time users get a buyer profile on the spot.
func currentViewer(store database.Store, c *gin.Context) (models.Viewer, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return models.Viewer{}, false
	}

	profile, err := store.GetProfile(userID)
	if errors.Is(err, database.ErrNotFound) {
		profile = &models.Profile{
			UserID: userID,
			Role:   models.RoleBuyer,
			Email:  middleware.UserEmail(c),
		}
		if err := store.UpsertProfile(profile); err != nil {
			respondError(c, err)
			return models.Viewer{}, false
		}
	} else if err != nil {
		respondError(c, err)
		return models.Viewer{}, false
	}

	return models.Viewer{UserID: userID, Role: profile.Role}, true
}
