package handlers

import (
	"net/http"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/response"
	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
)

// DeveloperHandler handles maintenance endpoints that are not part of the
// regular application surface. Routes using it sit behind the API-key middleware.
type DeveloperHandler struct {
	maintenanceService *service.MaintenanceService
}

// NewDeveloperHandler creates a new DeveloperHandler with the provided service dependency.
func NewDeveloperHandler(maintenanceService *service.MaintenanceService) *DeveloperHandler {
	return &DeveloperHandler{
		maintenanceService: maintenanceService,
	}
}

// BackupResponse reports where an on-demand backup was written.
type BackupResponse struct {
	Path string `json:"path"`
}

// Backup handles POST requests to write an immediate database backup.
//
// Endpoint: POST /api/developer/backup
// Response: 201 Created with BackupResponse
// Error: 401 Unauthorized without a valid API key and time token (middleware)
// Error: 500 Internal Server Error if the backup fails
func (h *DeveloperHandler) Backup(w http.ResponseWriter, r *http.Request) {
	path, err := h.maintenanceService.Backup(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBackupDatabase.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, BackupResponse{Path: path})
}
