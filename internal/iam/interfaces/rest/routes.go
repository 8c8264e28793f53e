package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// RegisterRoutes mounts the IAM endpoints. The sign-up and sign-in routes are
// public; user queries require an authenticated principal and the listing is
// restricted to administrators.
func RegisterRoutes(engine *gin.Engine, auth *AuthenticationHandler, users *UsersHandler, log logger.Logger) {
	v1 := engine.Group("/api/v1")

	authentication := v1.Group("/authentication")
	{
		authentication.POST("/sign-up", auth.SignUp)
		authentication.POST("/sign-in", auth.SignIn)
	}

	userRoutes := v1.Group("/users", security.RequireAuthenticated(log))
	{
		userRoutes.GET("", security.RequireAuthority(security.RoleAdmin, log), users.List)
		userRoutes.GET("/:id", users.GetByID)
		userRoutes.GET("/username/:username", users.GetByUsername)
	}
}
