// Package rest exposes the users service REST endpoints.
package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httpiface "github.com/ecomovil/platform/internal/interfaces/http"
	"github.com/ecomovil/platform/internal/users/application"
	"github.com/ecomovil/platform/internal/users/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// CreateProfileResource is the profile creation request body.
type CreateProfileResource struct {
	UserID      int64  `json:"userId" binding:"required"`
	PlanID      *int64 `json:"planId"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Ruc         string `json:"ruc"`
}

// UpdateProfileResource is the profile update request body.
type UpdateProfileResource struct {
	PlanID      *int64 `json:"planId"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Ruc         string `json:"ruc"`
}

// ProfileResource is the public representation of a profile.
type ProfileResource struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	PlanID      *int64 `json:"planId,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	FullName    string `json:"fullName"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Ruc         string `json:"ruc,omitempty"`
}

func profileResourceFromEntity(profile *domain.Profile) ProfileResource {
	return ProfileResource{
		ID:          profile.ID,
		UserID:      profile.UserID,
		PlanID:      profile.PlanID,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		FullName:    profile.FullName(),
		Email:       profile.Email,
		PhoneNumber: profile.PhoneNumber,
		Ruc:         profile.Ruc,
	}
}

// ProfilesHandler serves the profile endpoints.
type ProfilesHandler struct {
	profiles *application.ProfileService
	log      logger.Logger
}

func NewProfilesHandler(profiles *application.ProfileService, log logger.Logger) *ProfilesHandler {
	return &ProfilesHandler{
		profiles: profiles,
		log:      log.WithComponent("profiles_handler"),
	}
}

// Create handles POST /api/v1/profiles.
func (h *ProfilesHandler) Create(c *gin.Context) {
	var resource CreateProfileResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithError(err))
		return
	}

	profile, err := h.profiles.Create(c.Request.Context(), application.CreateProfileCommand{
		UserID:      resource.UserID,
		PlanID:      resource.PlanID,
		FirstName:   resource.FirstName,
		LastName:    resource.LastName,
		Email:       resource.Email,
		PhoneNumber: resource.PhoneNumber,
		Ruc:         resource.Ruc,
	})
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profileResourceFromEntity(profile))
}

// Update handles PUT /api/v1/profiles/:id.
func (h *ProfilesHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	var resource UpdateProfileResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithError(err))
		return
	}

	profile, err := h.profiles.Update(c.Request.Context(), application.UpdateProfileCommand{
		ProfileID:   id,
		PlanID:      resource.PlanID,
		FirstName:   resource.FirstName,
		LastName:    resource.LastName,
		Email:       resource.Email,
		PhoneNumber: resource.PhoneNumber,
		Ruc:         resource.Ruc,
	})
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResourceFromEntity(profile))
}

// List handles GET /api/v1/profiles. Admin only.
func (h *ProfilesHandler) List(c *gin.Context) {
	profiles, err := h.profiles.List(c.Request.Context())
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	resources := make([]ProfileResource, 0, len(profiles))
	for i := range profiles {
		resources = append(resources, profileResourceFromEntity(&profiles[i]))
	}
	c.JSON(http.StatusOK, resources)
}

// Me handles GET /api/v1/profiles/me: the profile of the authenticated user.
func (h *ProfilesHandler) Me(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok || principal.UserID == nil {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}
	h.respondProfile(c, func() (*domain.Profile, error) {
		return h.profiles.GetByUserID(c.Request.Context(), *principal.UserID)
	})
}

// ListByPlan handles GET /api/v1/profiles/plan/:planId.
func (h *ProfilesHandler) ListByPlan(c *gin.Context) {
	planID, ok := h.pathID(c, "planId")
	if !ok {
		return
	}
	profiles, err := h.profiles.ListByPlan(c.Request.Context(), planID)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	resources := make([]ProfileResource, 0, len(profiles))
	for i := range profiles {
		resources = append(resources, profileResourceFromEntity(&profiles[i]))
	}
	c.JSON(http.StatusOK, resources)
}

// GetByID handles GET /api/v1/profiles/:id.
func (h *ProfilesHandler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	h.respondProfile(c, func() (*domain.Profile, error) {
		return h.profiles.GetByID(c.Request.Context(), id)
	})
}

// GetByUserID handles GET /api/v1/profiles/user/:userId.
func (h *ProfilesHandler) GetByUserID(c *gin.Context) {
	userID, ok := h.pathID(c, "userId")
	if !ok {
		return
	}
	h.respondProfile(c, func() (*domain.Profile, error) {
		return h.profiles.GetByUserID(c.Request.Context(), userID)
	})
}

// GetByEmail handles GET /api/v1/profiles/email/:email.
func (h *ProfilesHandler) GetByEmail(c *gin.Context) {
	h.respondProfile(c, func() (*domain.Profile, error) {
		return h.profiles.GetByEmail(c.Request.Context(), c.Param("email"))
	})
}

// GetByRuc handles GET /api/v1/profiles/ruc/:ruc.
func (h *ProfilesHandler) GetByRuc(c *gin.Context) {
	h.respondProfile(c, func() (*domain.Profile, error) {
		return h.profiles.GetByRuc(c.Request.Context(), c.Param("ruc"))
	})
}

func (h *ProfilesHandler) respondProfile(c *gin.Context, fetch func() (*domain.Profile, error)) {
	profile, err := fetch()
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, profileResourceFromEntity(profile))
}

func (h *ProfilesHandler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithMessagef("invalid %s %q", name, c.Param(name)))
		return 0, false
	}
	return id, true
}
