package handlers

import (
	"net/http"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/response"
	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
)

// OverviewHandler handles HTTP requests for the combined net-worth view.
type OverviewHandler struct {
	overviewService *service.OverviewService
}

// NewOverviewHandler creates a new OverviewHandler with the provided service dependency.
func NewOverviewHandler(overviewService *service.OverviewService) *OverviewHandler {
	return &OverviewHandler{
		overviewService: overviewService,
	}
}

// Overview handles GET requests for the net-worth view combining balances,
// FX totals and open positions.
//
// Endpoint: GET /api/overview
// Response: 200 OK with Overview
// Error: 500 Internal Server Error if any of the three record fetches fails
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.overviewService.GetOverview(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetOverview.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, overview)
}
