package api

import (
	"net/http"

	"vidtube-backend/internal/auth/delivery"
	authUsecase "vidtube-backend/internal/auth/usecase"
	userDelivery "vidtube-backend/internal/users/delivery"
	userUsecase "vidtube-backend/internal/users/usecase"
	"vidtube-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, userUc userUsecase.UserUsecase, cfg *config.Config) {
	authHandler := delivery.NewAuthHandler(authUc, cfg)
	userHandler := userDelivery.NewUserHandler(userUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", delivery.AuthMiddleware(authUc), authHandler.Logout)
			auth.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)
			auth.POST("/change-password", delivery.AuthMiddleware(authUc), authHandler.ChangePassword)
		}

		// User profile routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUc))
		{
			users.PATCH("/profile", userHandler.UpdateProfile)
			users.PATCH("/avatar", userHandler.UpdateAvatar)
			users.PATCH("/cover", userHandler.UpdateCover)
			users.GET("/history", userHandler.GetWatchHistory)
			users.POST("/history/:videoId", userHandler.AddWatchHistory)
		}
	}
}
