package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rosecitylabs/pdxevents/config"
	"github.com/rosecitylabs/pdxevents/internal/handlers"
	"github.com/rosecitylabs/pdxevents/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/:id", handlers.GetEvent)
			eventPublic.GET("/:id/qr", handlers.GetEventQR)
		}

		public.GET("/venues", handlers.ListVenues)
		public.GET("/videos", handlers.ListMusicVideos)
		public.GET("/places/details", handlers.GetPlaceDetails)
		public.POST("/donations", handlers.CreateDonation)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		submissions := protected.Group("/submissions")
		{
			submissions.POST("", handlers.CreateSubmission)
			submissions.GET("", handlers.ListMySubmissions)
			submissions.DELETE("/:id", handlers.DeleteSubmission)
		}

		videos := protected.Group("/videos")
		{
			videos.POST("", handlers.CreateMusicVideo)
			videos.GET("/mine", handlers.ListMyMusicVideos)
			videos.DELETE("/:id", handlers.DeleteMusicVideo)
		}
	}

	admin := r.Group("/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("admin"))
	{
		admin.GET("/submissions/pending", handlers.ListPendingSubmissions)
		admin.PUT("/submissions/:id/status", handlers.UpdateSubmissionStatus)
		admin.GET("/videos/pending", handlers.ListPendingMusicVideos)
		admin.PUT("/videos/:id/status", handlers.UpdateMusicVideoStatus)

		admin.POST("/sync/import", handlers.ImportEvents)
		admin.POST("/sync/run", handlers.RunSync)
	}
}
