// Package rest exposes the reservations service REST endpoints.
package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	httpiface "github.com/ecomovil/platform/internal/interfaces/http"
	"github.com/ecomovil/platform/internal/reservations/application"
	"github.com/ecomovil/platform/internal/reservations/domain"
	"github.com/ecomovil/platform/pkg/errors"
	"github.com/ecomovil/platform/pkg/logger"
	"github.com/ecomovil/platform/pkg/security"
)

// CreateReservationResource is the booking creation request body.
type CreateReservationResource struct {
	VehicleID int64     `json:"vehicleId" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// UpdateStatusResource is the status change request body.
type UpdateStatusResource struct {
	Status string `json:"status" binding:"required"`
}

// ReservationResource is the public representation of a booking.
type ReservationResource struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	VehicleID int64     `json:"vehicleId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}

func reservationResourceFromEntity(reservation *domain.Reservation) ReservationResource {
	return ReservationResource{
		ID:        reservation.ID,
		UserID:    reservation.UserID,
		VehicleID: reservation.VehicleID,
		StartDate: reservation.StartDate,
		EndDate:   reservation.EndDate,
		Status:    reservation.Status,
	}
}

// ReservationsHandler serves the reservation endpoints.
type ReservationsHandler struct {
	reservations *application.ReservationService
	log          logger.Logger
}

func NewReservationsHandler(reservations *application.ReservationService, log logger.Logger) *ReservationsHandler {
	return &ReservationsHandler{
		reservations: reservations,
		log:          log.WithComponent("reservations_handler"),
	}
}

// Create handles POST /api/v1/reservations. The booking user is the
// authenticated principal.
func (h *ReservationsHandler) Create(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok || principal.UserID == nil {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}

	var resource CreateReservationResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithError(err))
		return
	}

	reservation, err := h.reservations.Create(c.Request.Context(), application.CreateReservationCommand{
		UserID:    *principal.UserID,
		VehicleID: resource.VehicleID,
		StartDate: resource.StartDate,
		EndDate:   resource.EndDate,
	})
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reservationResourceFromEntity(reservation))
}

// UpdateStatus handles PUT /api/v1/reservations/:id/status.
func (h *ReservationsHandler) UpdateStatus(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}
	id, idOK := h.pathID(c, "id")
	if !idOK {
		return
	}

	var resource UpdateStatusResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithError(err))
		return
	}

	reservation, err := h.reservations.UpdateStatus(c.Request.Context(), principal, id, resource.Status)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, reservationResourceFromEntity(reservation))
}

// Delete handles DELETE /api/v1/reservations/:id. Owner or admin only; the
// booking is soft-deleted.
func (h *ReservationsHandler) Delete(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}
	id, idOK := h.pathID(c, "id")
	if !idOK {
		return
	}

	if err := h.reservations.Delete(c.Request.Context(), principal, id); err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMine handles GET /api/v1/reservations/my-reservations.
func (h *ReservationsHandler) ListMine(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok || principal.UserID == nil {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}

	reservations, err := h.reservations.ListByUser(c.Request.Context(), principal, *principal.UserID)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationResources(reservations))
}

// GetByID handles GET /api/v1/reservations/:id.
func (h *ReservationsHandler) GetByID(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}
	id, idOK := h.pathID(c, "id")
	if !idOK {
		return
	}

	reservation, err := h.reservations.GetByID(c.Request.Context(), principal, id)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationResourceFromEntity(reservation))
}

// ListByUser handles GET /api/v1/reservations/user/:userId.
func (h *ReservationsHandler) ListByUser(c *gin.Context) {
	principal, ok := security.PrincipalFrom(c.Request.Context())
	if !ok {
		httpiface.SendError(c, errors.ErrUnauthenticated)
		return
	}
	userID, idOK := h.pathID(c, "userId")
	if !idOK {
		return
	}

	reservations, err := h.reservations.ListByUser(c.Request.Context(), principal, userID)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationResources(reservations))
}

// ListByVehicle handles GET /api/v1/reservations/vehicle/:vehicleId. Admin
// only.
func (h *ReservationsHandler) ListByVehicle(c *gin.Context) {
	vehicleID, ok := h.pathID(c, "vehicleId")
	if !ok {
		return
	}
	reservations, err := h.reservations.ListByVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationResources(reservations))
}

// List handles GET /api/v1/reservations. Admin only.
func (h *ReservationsHandler) List(c *gin.Context) {
	reservations, err := h.reservations.List(c.Request.Context())
	if err != nil {
		httpiface.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationResources(reservations))
}

func reservationResources(reservations []domain.Reservation) []ReservationResource {
	resources := make([]ReservationResource, 0, len(reservations))
	for i := range reservations {
		resources = append(resources, reservationResourceFromEntity(&reservations[i]))
	}
	return resources
}

func (h *ReservationsHandler) pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httpiface.SendError(c, errors.ErrInvalidRequest.WithMessagef("invalid %s %q", name, c.Param(name)))
		return 0, false
	}
	return id, true
}
