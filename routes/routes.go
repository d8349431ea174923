package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/controllers"
	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/middleware"
	"github.com/prithvi-path/api-go/stories"
	"github.com/prithvi-path/api-go/store"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, st store.LocationStore, ledgers *gamification.Registry, storySvc *stories.Service, monitor *stories.Monitor) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	locationController := controllers.NewLocationController(st)
	checkinController := controllers.NewCheckinController(st, ledgers, storySvc)
	storyController := controllers.NewStoryController(storySvc, monitor)
	userController := controllers.NewUserController(db, ledgers)
	leaderboardController := controllers.NewLeaderboardController(db, ledgers)
	reviewController := controllers.NewReviewController(db, st)
	eventController := controllers.NewEventController(db)
	adminController := controllers.NewAdminController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/guest", authController.GuestSignIn)
		public.POST("/google-signin", authController.GoogleSignIn)
		public.POST("/refresh-token", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)

		SetupLocationRoutes(protected, locationController, checkinController, reviewController)
		SetupStoryRoutes(protected, storyController)
		SetupUserRoutes(protected, userController, locationController, leaderboardController, eventController)
		SetupUploadRoutes(protected, controllers.NewUploadController())
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		SetupAdminRoutes(admin, adminController)
	}
}
