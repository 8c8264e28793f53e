// Package outbound holds the cross-service callers of the users service.
package outbound

import (
	"context"
	"fmt"

	"github.com/ecomovil/platform/pkg/acl"
	"github.com/ecomovil/platform/pkg/logger"
)

type planResource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ExternalPlanService confirms subscription plans against the plans service.
type ExternalPlanService struct {
	client *acl.Client
	log    logger.Logger
}

func NewExternalPlanService(baseURL string, log logger.Logger) *ExternalPlanService {
	return &ExternalPlanService{
		client: acl.NewClient(baseURL, log),
		log:    log.WithComponent("external_plan_service"),
	}
}

// PlanExists reports whether the plans service confirmed the plan. Any
// transport or decoding failure reads as not confirmed.
func (s *ExternalPlanService) PlanExists(ctx context.Context, planID int64) bool {
	var plan planResource
	return s.client.FetchJSON(ctx, fmt.Sprintf("/api/v1/plans/id/%d", planID), &plan)
}
