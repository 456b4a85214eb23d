package handlers

import (
	"context"

	"printshop-backend/internal/middleware"
	"printshop-backend/internal/models"
	"printshop-backend/internal/services"
)

// isAdmin reports whether the request carries the admin role. A missing
// or unknown role counts as non-admin.
func isAdmin(ctx context.Context) bool {
	role, _ := middleware.GetRoleFromContext(ctx)
	return role == services.RoleAdmin
}

// redactOperationCosts clears the internal cost from operations before
// they are served to non-admin roles. Same rule as the dashboard: cost
// and profit figures are admin only.
func redactOperationCosts(operations []*models.Operation) {
	for _, op := range operations {
		if op != nil {
			op.Cost = nil
		}
	}
}

// redactReportCosts applies the cost rule to an assembled report's
// embedded operation lists.
func redactReportCosts(result *models.ReportResult) {
	for i := range result.Teachers {
		redactOperationCosts(result.Teachers[i].Operations)
	}
}
