package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomovil/platform/internal/iam/application"
	"github.com/ecomovil/platform/internal/infrastructure/monitoring"
	httpiface "github.com/ecomovil/platform/internal/interfaces/http"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
)

// AuthenticationHandler serves the sign-up and sign-in endpoints.
type AuthenticationHandler struct {
	users   *application.UserService
	metrics *monitoring.Metrics
	log     logger.Logger
}

func NewAuthenticationHandler(users *application.UserService, metrics *monitoring.Metrics, log logger.Logger) *AuthenticationHandler {
	return &AuthenticationHandler{
		users:   users,
		metrics: metrics,
		log:     log.WithComponent("authentication_handler"),
	}
}

// SignUp handles POST /api/v1/authentication/sign-up.
func (h *AuthenticationHandler) SignUp(c *gin.Context) {
	var resource SignUpResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithError(err))
		return
	}

	user, err := h.users.SignUp(c.Request.Context(), application.SignUpCommand{
		Username: resource.Username,
		Password: resource.Password,
		Email:    resource.Email,
		Roles:    resource.Roles,
	})
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResourceFromEntity(user))
}

// SignIn handles POST /api/v1/authentication/sign-in.
func (h *AuthenticationHandler) SignIn(c *gin.Context) {
	var resource SignInResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithError(err))
		return
	}

	user, token, err := h.users.SignIn(c.Request.Context(), application.SignInCommand{
		Username: resource.Username,
		Password: resource.Password,
	})
	if err != nil {
		h.metrics.RecordTokenIssued("failure")
		httpiface.SendError(c, err)
		return
	}
	h.metrics.RecordTokenIssued("success")

	c.JSON(http.StatusOK, AuthenticatedUserResource{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}
