package handler

import (
	"net/http"

	"pasi-clinic-backend/internal/usecase"
	"pasi-clinic-backend/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard")
		return
	}

	response.Success(w, http.StatusOK, "", stats)
}
