// Package rest exposes the vehicles service REST endpoints.
package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httpiface "github.com/ecomovil/platform/internal/interfaces/http"
	"github.com/ecomovil/platform/internal/vehicles/application"
	"github.com/ecomovil/platform/internal/vehicles/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// VehicleResource is the public representation of a listing.
type VehicleResource struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Year        int     `json:"year"`
	Review      string  `json:"review,omitempty"`
	PriceRent   float64 `json:"priceRent"`
	PriceSell   float64 `json:"priceSell"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description,omitempty"`
	OwnerID     int64   `json:"ownerId"`
}

// SaveVehicleResource is the create/update request body.
type SaveVehicleResource struct {
	Type        string  `json:"type" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Year        int     `json:"year"`
	Review      string  `json:"review"`
	PriceRent   float64 `json:"priceRent"`
	PriceSell   float64 `json:"priceSell"`
	Available   bool    `json:"available"`
	ImageURL    string  `json:"imageUrl"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description"`
}

func vehicleResourceFromEntity(vehicle *domain.Vehicle) VehicleResource {
	return VehicleResource{
		ID:          vehicle.ID,
		Type:        vehicle.Type,
		Name:        vehicle.Name,
		Year:        vehicle.Year,
		Review:      vehicle.Review,
		PriceRent:   vehicle.PriceRent,
		PriceSell:   vehicle.PriceSell,
		Available:   vehicle.Available,
		ImageURL:    vehicle.ImageURL,
		Lat:         vehicle.Lat,
		Lng:         vehicle.Lng,
		Description: vehicle.Description,
		OwnerID:     vehicle.OwnerID,
	}
}

// VehiclesHandler serves the vehicle endpoints.
type VehiclesHandler struct {
	vehicles *application.VehicleService
	log      logger.Logger
}

func NewVehiclesHandler(vehicles *application.VehicleService, log logger.Logger) *VehiclesHandler {
	return &VehiclesHandler{
		vehicles: vehicles,
		log:      log.WithComponent("vehicles_handler"),
	}
}

// GetPublicByID handles GET /api/v1/vehicles/public/:id. No authentication
// is required; this is the endpoint sibling services consult.
func (h *VehiclesHandler) GetPublicByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	vehicle, err := h.vehicles.GetByID(c.Request.Context(), id)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleResourceFromEntity(vehicle))
}

// GetByID handles GET /api/v1/vehicles/:id. Owner or admin only.
func (h *VehiclesHandler) GetByID(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}
	id, idOK := h.pathID(c)
	if !idOK {
		return
	}
	vehicle, err := h.vehicles.GetForUser(c.Request.Context(), principal, id)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleResourceFromEntity(vehicle))
}

// ListMine handles GET /api/v1/vehicles/my-vehicles.
func (h *VehiclesHandler) ListMine(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok || principal.UserID == nil {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}
	vehicles, err := h.vehicles.ListByOwner(c.Request.Context(), *principal.UserID)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleResources(vehicles))
}

// ListByType handles GET /api/v1/vehicles/type/:type.
func (h *VehiclesHandler) ListByType(c *gin.Context) {
	vehicles, err := h.vehicles.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleResources(vehicles))
}

// Create handles POST /api/v1/vehicles. The owner is the authenticated user.
func (h *VehiclesHandler) Create(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok || principal.UserID == nil {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}

	var resource SaveVehicleResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithError(err))
		return
	}

	vehicle, err := h.vehicles.Create(c.Request.Context(), application.CreateVehicleCommand{
		Type:        resource.Type,
		Name:        resource.Name,
		Year:        resource.Year,
		Review:      resource.Review,
		PriceRent:   resource.PriceRent,
		PriceSell:   resource.PriceSell,
		ImageURL:    resource.ImageURL,
		Lat:         resource.Lat,
		Lng:         resource.Lng,
		Description: resource.Description,
		OwnerID:     *principal.UserID,
	})
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicleResourceFromEntity(vehicle))
}

// Update handles PUT /api/v1/vehicles/:id. Owner or admin only.
func (h *VehiclesHandler) Update(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}
	id, idOK := h.pathID(c)
	if !idOK {
		return
	}

	var resource SaveVehicleResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithError(err))
		return
	}

	vehicle, err := h.vehicles.Update(c.Request.Context(), principal, application.UpdateVehicleCommand{
		VehicleID:   id,
		Type:        resource.Type,
		Name:        resource.Name,
		Year:        resource.Year,
		Review:      resource.Review,
		PriceRent:   resource.PriceRent,
		PriceSell:   resource.PriceSell,
		Available:   resource.Available,
		ImageURL:    resource.ImageURL,
		Lat:         resource.Lat,
		Lng:         resource.Lng,
		Description: resource.Description,
	})
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, vehicleResourceFromEntity(vehicle))
}

// Delete handles DELETE /api/v1/vehicles/:id. Admin only.
func (h *VehiclesHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.vehicles.Delete(c.Request.Context(), id); err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List handles GET /api/v1/vehicles. Available listings only.
func (h *VehiclesHandler) List(c *gin.Context) {
	vehicles, err := h.vehicles.ListAvailable(c.Request.Context())
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleResources(vehicles))
}

// ListAll handles GET /api/v1/vehicles/all. Admin only.
func (h *VehiclesHandler) ListAll(c *gin.Context) {
	vehicles, err := h.vehicles.List(c.Request.Context())
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleResources(vehicles))
}

// ListByOwner handles GET /api/v1/vehicles/owner/:ownerId.
func (h *VehiclesHandler) ListByOwner(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("ownerId"), 10, 64)
	if err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithMessagef("invalid owner id %q", c.Param("ownerId")))
		return
	}
	vehicles, err := h.vehicles.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicleResources(vehicles))
}

func vehicleResources(vehicles []domain.Vehicle) []VehicleResource {
	resources := make([]VehicleResource, 0, len(vehicles))
	for i := range vehicles {
		resources = append(resources, vehicleResourceFromEntity(&vehicles[i]))
	}
	return resources
}

func (h *VehiclesHandler) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithMessagef("invalid vehicle id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}
