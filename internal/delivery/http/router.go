package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shubhmangal/backend/internal/delivery/http/handler"
	"github.com/shubhmangal/backend/internal/delivery/http/middleware"
	"github.com/shubhmangal/backend/internal/usecase/auth"
)

type Router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	chatHandler     *handler.ChatHandler
	interestHandler *handler.InterestHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	uploadsPath     string
	uploadsBaseURL  string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	chatHandler *handler.ChatHandler,
	interestHandler *handler.InterestHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	uploadsPath, uploadsBaseURL string,
) *Router {
	return &Router{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		chatHandler:     chatHandler,
		interestHandler: interestHandler,
		adminHandler:    adminHandler,
		authMiddleware:  authMiddleware,
		uploadsPath:     uploadsPath,
		uploadsBaseURL:  uploadsBaseURL,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Custom binding rule for Nepali mobile numbers, shared with the
	// signup validation.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("npmobile", func(fl validator.FieldLevel) bool {
			return auth.ValidateMobile(fl.Field().String()) == nil
		})
	}

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Stored profile photos
	router.Static(r.uploadsBaseURL, r.uploadsPath)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.PUT("/me/photo", r.profileHandler.UpdateMyPhoto)
				profile.GET("/:uid", r.profileHandler.GetProfile)
			}

			// Matchmaking questionnaire routes
			chat := protected.Group("/chat")
			{
				chat.POST("/start", r.chatHandler.Start)
				chat.POST("/answer", r.chatHandler.Answer)
				chat.GET("/results", r.chatHandler.Results)
				chat.DELETE("", r.chatHandler.Cancel)
			}

			// Interest routes
			interests := protected.Group("/interests")
			{
				interests.POST("", r.interestHandler.Express)
				interests.GET("", r.interestHandler.List)
				interests.GET("/check/:target_uid", r.interestHandler.Check)
				interests.GET("/pending-count", r.interestHandler.PendingCount)
				interests.POST("/:id/accept", r.interestHandler.Accept)
				interests.POST("/:id/reject", r.interestHandler.Reject)
			}

			// Admin routes
			admin := protected.Group("/admin")
			admin.Use(r.authMiddleware.RequireAdmin())
			{
				admin.GET("/profiles", r.adminHandler.ListProfiles)
				admin.GET("/profiles/export", r.adminHandler.ExportCSV)
				admin.PUT("/profiles/:uid", r.adminHandler.UpdateProfile)
				admin.PUT("/profiles/:uid/status", r.adminHandler.SetStatus)
				admin.POST("/profiles/:uid/notes", r.adminHandler.AddNote)
				admin.GET("/stats", r.adminHandler.Stats)
				admin.GET("/pairs", r.adminHandler.ListPairs)
			}
		}
	}

	return router
}
