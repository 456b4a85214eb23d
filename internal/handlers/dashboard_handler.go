package handlers

import (
	"net/http"

	"printshop-backend/internal/middleware"
	"printshop-backend/internal/services"
	"printshop-backend/pkg/utils"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(s *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// GetSummary serves the landing page snapshot. Profit and cost figures are
// included for admins only.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRoleFromContext(r.Context())

	summary, err := h.Service.GetSummary(r.Context(), role == services.RoleAdmin)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, summary)
}
