package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecomovil/platform/internal/iam/application"
	httpiface "github.com/ecomovil/platform/internal/interfaces/http"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
)

// UsersHandler serves the user query endpoints.
type UsersHandler struct {
	users *application.UserService
	log   logger.Logger
}

func NewUsersHandler(users *application.UserService, log logger.Logger) *UsersHandler {
	return &UsersHandler{
		users: users,
		log:   log.WithComponent("users_handler"),
	}
}

// List handles GET /api/v1/users. Admin only.
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	resources := make([]UserResource, 0, len(users))
	for i := range users {
		resources = append(resources, userResourceFromEntity(&users[i]))
	}
	c.JSON(http.StatusOK, resources)
}

// GetByID handles GET /api/v1/users/:id.
func (h *UsersHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithMessagef("invalid user id %q", c.Param("id")))
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResourceFromEntity(user))
}

// GetByUsername handles GET /api/v1/users/username/:username.
func (h *UsersHandler) GetByUsername(c *gin.Context) {
	user, err := h.users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResourceFromEntity(user))
}
