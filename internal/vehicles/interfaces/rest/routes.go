package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// RegisterRoutes mounts the vehicle endpoints. The public lookup stays open
// for sibling services and unauthenticated browsing; everything else needs
// an authenticated principal, and destructive or full-listing operations
// need the admin role.
func RegisterRoutes(engine *gin.Engine, vehicles *VehiclesHandler, log logger.Logger) {
	group := engine.Group("/api/v1/vehicles")

	group.GET("/public/:id", vehicles.GetPublicByID)

	authenticated := group.Group("", security.RequireAuthenticated(log))
	{
		authenticated.GET("", vehicles.List)
		authenticated.GET("/all", security.RequireAuthority(security.RoleAdmin, log), vehicles.ListAll)
		authenticated.GET("/my-vehicles", vehicles.ListMine)
		authenticated.GET("/type/:type", vehicles.ListByType)
		authenticated.GET("/owner/:ownerId", vehicles.ListByOwner)
		authenticated.GET("/:id", vehicles.GetByID)
		authenticated.POST("", vehicles.Create)
		authenticated.PUT("/:id", vehicles.Update)
		authenticated.DELETE("/:id", security.RequireAuthority(security.RoleAdmin, log), vehicles.Delete)
	}
}
