package routes

import (
	"github.com/gin-gonic/gin"

	"punchcard/internal/interfaces/http/handlers"
	"punchcard/internal/interfaces/http/middleware"
	"punchcard/internal/shared/authorization"
)

type AdminRouteConfig struct {
	ReportHandler    *handlers.ReportHandler
	AdminUserHandler *handlers.AdminUserHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/api/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/attendance", config.ReportHandler.ListAttendance)
		admin.GET("/export", config.ReportHandler.Export)
		admin.GET("/stats", config.ReportHandler.Stats)

		users := admin.Group("/users")
		{
			users.GET("", config.AdminUserHandler.ListUsers)
			users.POST("", config.AdminUserHandler.CreateUser)
			users.POST("/:id/toggle-active", config.AdminUserHandler.ToggleActive)
			users.PATCH("/:id", config.AdminUserHandler.UpdateUser)
			users.DELETE("/:id", config.AdminUserHandler.DeleteUser)
		}
	}
}
