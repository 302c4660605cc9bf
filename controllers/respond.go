package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
	"github.com/jerssonfuentes/geek-movies-app-main/services"
)

// callerIdentity rebuilds the verified identity the auth middleware stored
// on the context. Nil for anonymous requests.
func callerIdentity(ctx *gin.Context) *models.Identity {
	userID, exists := ctx.Get("user_id")
	if !exists {
		return nil
	}
	userIDStr, ok := userID.(string)
	if !ok {
		return nil
	}
	objID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return nil
	}

	role := models.RoleUser
	if r, exists := ctx.Get("role"); exists {
		if roleStr, ok := r.(string); ok && models.Role(roleStr) == models.RoleAdmin {
			role = models.RoleAdmin
		}
	}
	return &models.Identity{UserID: objID, Role: role}
}

// respondError maps engine errors onto HTTP statuses. Unknown errors are
// logged and surfaced as an opaque failure.
func respondError(ctx *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	default:
		slog.Error("request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses the :id route parameter, writing a 400 itself on failure.
func pathID(ctx *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}
