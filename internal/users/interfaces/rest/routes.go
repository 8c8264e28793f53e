package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// RegisterRoutes mounts the profile endpoints. All of them require an
// authenticated principal; the full listing is restricted to administrators.
func RegisterRoutes(engine *gin.Engine, profiles *ProfilesHandler, log logger.Logger) {
	group := engine.Group("/api/v1/profiles", security.RequireAuthenticated(log))
	{
		group.POST("", profiles.Create)
		group.PUT("/:id", profiles.Update)
		group.GET("", security.RequireAuthority(security.RoleAdmin, log), profiles.List)
		group.GET("/me", profiles.Me)
		group.GET("/:id", profiles.GetByID)
		group.GET("/plan/:planId", profiles.ListByPlan)
		group.GET("/user/:userId", profiles.GetByUserID)
		group.GET("/email/:email", profiles.GetByEmail)
		group.GET("/ruc/:ruc", profiles.GetByRuc)
	}
}
