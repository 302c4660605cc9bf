package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerssonfuentes/geek-movies-app-main/config"
	"github.com/jerssonfuentes/geek-movies-app-main/controllers"
	"github.com/jerssonfuentes/geek-movies-app-main/data_access"
	"github.com/jerssonfuentes/geek-movies-app-main/helper"
	"github.com/jerssonfuentes/geek-movies-app-main/middleware"
	"github.com/jerssonfuentes/geek-movies-app-main/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create indexes:", err)
	}

	// Repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)
	categoryRepo := data_access.NewCategoryRepository(mongodb)
	reviewRepo := data_access.NewReviewRepository(mongodb)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	aggregator := services.NewRatingAggregator(movieRepo, reviewRepo)
	catalogService := services.NewCatalogService(movieRepo, categoryRepo, reviewRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	reviewService := services.NewReviewService(reviewRepo, movieRepo, aggregator)

	if err := bootstrap(cfg, authService, userRepo, movieRepo, categoryRepo); err != nil {
		log.Fatal("Failed to seed initial data:", err)
	}

	// Controllers
	authController := controllers.NewAuthController(authService)
	movieController := controllers.NewMovieController(catalogService)
	categoryController := controllers.NewCategoryController(categoryService)
	reviewController := controllers.NewReviewController(reviewService)

	middleware.SetJWTSecret(cfg.JWTSecret)

	r := gin.Default()
	r.Use(setupCORS())

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", authController.Register)
		api.POST("/auth/login", authController.Login)
		api.POST("/auth/logout", authController.Logout)

		// Public catalog; identity attached when a token is present
		public := api.Group("")
		public.Use(middleware.OptionalAuth())
		{
			public.GET("/movies", movieController.List)
			public.GET("/movies/popular", movieController.Popular)
			public.GET("/movies/recent", movieController.Recent)
			public.GET("/movies/:id", movieController.GetByID)
			public.GET("/movies/:id/reviews", reviewController.ListByMovie)
			public.GET("/categories", categoryController.List)
			public.GET("/categories/:id", categoryController.GetByID)
		}

		// Authenticated routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("/movies", movieController.Create)
			protected.PUT("/movies/:id", movieController.Update)
			protected.DELETE("/movies/:id", movieController.Delete)
			protected.POST("/movies/:id/reviews", reviewController.Create)
			protected.PUT("/reviews/:id", reviewController.Update)
			protected.DELETE("/reviews/:id", reviewController.Delete)

			// Admin routes
			admin := protected.Group("")
			admin.Use(middleware.AdminOnly())
			{
				admin.GET("/movies/pending", movieController.ListPending)
				admin.PATCH("/movies/:id/approve", movieController.Approve)
				admin.POST("/categories", categoryController.Create)
				admin.PUT("/categories/:id", categoryController.Update)
				admin.DELETE("/categories/:id", categoryController.Delete)
			}
		}
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// bootstrap provisions the admin account and seed data on first start.
func bootstrap(cfg *config.Config, authService *services.AuthService, userRepo *data_access.UserRepository, movieRepo *data_access.MovieRepository, categoryRepo *data_access.CategoryRepository) error {
	ctx := context.Background()

	if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	}
	if err := helper.EnsureCategories(ctx, categoryRepo); err != nil {
		return err
	}

	if cfg.SeedFile == "" {
		return nil
	}
	createdBy := primitive.NilObjectID
	if cfg.AdminEmail != "" {
		admin, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
		if err != nil {
			return err
		}
		if admin != nil {
			createdBy = admin.ID
		}
	}
	return helper.SeedMoviesFromCSV(ctx, cfg.SeedFile, movieRepo, categoryRepo, createdBy)
}
