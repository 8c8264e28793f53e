package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// RegisterRoutes mounts the reservation endpoints. Every route requires an
// authenticated principal; the cross-user listings are restricted to
// administrators, per-booking visibility is enforced in the service.
func RegisterRoutes(engine *gin.Engine, reservations *ReservationsHandler, log logger.Logger) {
	group := engine.Group("/api/v1/reservations", security.RequireAuthenticated(log))
	{
		group.POST("", reservations.Create)
		group.GET("", security.RequireAuthority(security.RoleAdmin, log), reservations.List)
		group.GET("/my-reservations", reservations.ListMine)
		group.GET("/:id", reservations.GetByID)
		group.PUT("/:id/status", reservations.UpdateStatus)
		group.DELETE("/:id", reservations.Delete)
		group.GET("/user/:userId", reservations.ListByUser)
		group.GET("/vehicle/:vehicleId", security.RequireAuthority(security.RoleAdmin, log), reservations.ListByVehicle)
	}
}
