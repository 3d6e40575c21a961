package handlers

import (
	"net/http"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/api/response"
	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
	"github.com/naruebet/Finance-Tracker-Backend/internal/validation"
)

// AssetTransactionHandler handles HTTP requests for asset transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the balanceService.
type AssetTransactionHandler struct {
	balanceService *service.BalanceService
}

// NewAssetTransactionHandler creates a new AssetTransactionHandler with the provided service dependency.
func NewAssetTransactionHandler(balanceService *service.BalanceService) *AssetTransactionHandler {
	return &AssetTransactionHandler{
		balanceService: balanceService,
	}
}

// AllAssetTransactions handles GET requests to retrieve the full asset transaction log.
//
// Endpoint: GET /api/asset-transaction
// Response: 200 OK with array of AssetTransaction
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetTransactionHandler) AllAssetTransactions(w http.ResponseWriter, _ *http.Request) {
	transactions, err := h.balanceService.GetAssetTransactions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssetTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// BalanceSummary handles GET requests for the aggregated balance view:
// the grand total plus per-account balances in display rank order.
//
// Endpoint: GET /api/asset-transaction/summary
// Response: 200 OK with BalanceSummary
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetTransactionHandler) BalanceSummary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.balanceService.GetBalanceSummary()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetBalanceSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// CreateAssetTransaction handles POST requests to create a new asset transaction.
// Validates the request body and creates an immutable cash-flow record.
//
// Endpoint: POST /api/asset-transaction
// Request Body: CreateAssetTransactionRequest (accountName, type, amount, date, tag, note)
// Response: 201 Created with AssetTransaction
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AssetTransactionHandler) CreateAssetTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssetTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAssetTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.balanceService.CreateAssetTransaction(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create asset transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}
