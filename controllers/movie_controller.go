package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jerssonfuentes/geek-movies-app-main/models"
	"github.com/jerssonfuentes/geek-movies-app-main/services"
)

type MovieController struct {
	catalogService *services.CatalogService
}

func NewMovieController(catalogService *services.CatalogService) *MovieController {
	return &MovieController{
		catalogService: catalogService,
	}
}

// List serves the public catalog: GET /api/movies
func (c *MovieController) List(ctx *gin.Context) {
	var params models.ListMoviesParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	result, err := c.catalogService.List(ctx.Request.Context(), params)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListPending serves the moderation queue: GET /api/movies/pending
func (c *MovieController) ListPending(ctx *gin.Context) {
	var params models.ListMoviesParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	result, err := c.catalogService.ListPending(ctx.Request.Context(), params, callerIdentity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func (c *MovieController) Popular(ctx *gin.Context) {
	movies, err := c.catalogService.Popular(ctx.Request.Context(), queryLimit(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"movies": movies})
}

func (c *MovieController) Recent(ctx *gin.Context) {
	movies, err := c.catalogService.Recent(ctx.Request.Context(), queryLimit(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"movies": movies})
}

func (c *MovieController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	detail, err := c.catalogService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

func (c *MovieController) Create(ctx *gin.Context) {
	var req models.CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "title, description and year are required"})
		return
	}

	movie, err := c.catalogService.Create(ctx.Request.Context(), &req, callerIdentity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, movie)
}

func (c *MovieController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req models.UpdateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	movie, err := c.catalogService.Update(ctx.Request.Context(), id, &req, callerIdentity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

func (c *MovieController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := c.catalogService.Delete(ctx.Request.Context(), id, callerIdentity(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "movie deleted"})
}

// Approve handles PATCH /api/movies/:id/approve (admin only).
func (c *MovieController) Approve(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	movie, err := c.catalogService.Approve(ctx.Request.Context(), id, callerIdentity(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

func queryLimit(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "6"))
	if err != nil {
		return 6
	}
	return limit
}
