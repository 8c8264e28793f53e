// Package outbound holds the cross-service callers of the reservations
// service. Both callers forward the inbound bearer token and read any
// failure as "not confirmed".
package outbound

import (
	"context"
	"fmt"

	"github.com/ecomovil/platform/pkg/acl"
	"github.com/ecomovil/platform/pkg/logger"
)

type profileResource struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

type vehicleResource struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ExternalUserService confirms user profiles against the users service.
type ExternalUserService struct {
	client *acl.Client
	log    logger.Logger
}

func NewExternalUserService(baseURL string, log logger.Logger) *ExternalUserService {
	return &ExternalUserService{
		client: acl.NewClient(baseURL, log),
		log:    log.WithComponent("external_user_service"),
	}
}

func (s *ExternalUserService) UserExists(ctx context.Context, userID int64) bool {
	var profile profileResource
	return s.client.FetchJSON(ctx, fmt.Sprintf("/api/v1/profiles/user/%d", userID), &profile)
}

// ExternalVehicleService confirms vehicle listings against the vehicles
// service through its public lookup.
type ExternalVehicleService struct {
	client *acl.Client
	log    logger.Logger
}

func NewExternalVehicleService(baseURL string, log logger.Logger) *ExternalVehicleService {
	return &ExternalVehicleService{
		client: acl.NewClient(baseURL, log),
		log:    log.WithComponent("external_vehicle_service"),
	}
}

func (s *ExternalVehicleService) VehicleExists(ctx context.Context, vehicleID int64) bool {
	var vehicle vehicleResource
	return s.client.FetchJSON(ctx, fmt.Sprintf("/api/v1/vehicles/public/%d", vehicleID), &vehicle)
}
