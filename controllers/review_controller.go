package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
	"github.com/jerssonfuentes/geek-movies-app-main/services"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// ListByMovie serves GET /api/movies/:id/reviews
func (c *ReviewController) ListByMovie(ctx *gin.Context) {
	movieID, ok := pathID(ctx)
	if !ok {
		return
	}
	reviews, err := c.reviewService.ListByMovie(ctx.Request.Context(), movieID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Create serves POST /api/movies/:id/reviews
func (c *ReviewController) Create(ctx *gin.Context) {
	movieID, ok := pathID(ctx)
	if !ok {
		return
	}
	var req models.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}

	review, err := c.reviewService.Create(ctx.Request.Context(), movieID, &req, callerIdentity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, review)
}

func (c *ReviewController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req models.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := c.reviewService.Update(ctx.Request.Context(), id, &req, callerIdentity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}

func (c *ReviewController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.reviewService.Delete(ctx.Request.Context(), id, callerIdentity(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
