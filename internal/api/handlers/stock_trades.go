package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/api/response"
	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
	"github.com/naruebet/Finance-Tracker-Backend/internal/validation"
)

// StockTradeHandler handles HTTP requests for stock trade endpoints.
type StockTradeHandler struct {
	tradeService *service.TradeService
}

// NewStockTradeHandler creates a new StockTradeHandler with the provided service dependency.
func NewStockTradeHandler(tradeService *service.TradeService) *StockTradeHandler {
	return &StockTradeHandler{
		tradeService: tradeService,
	}
}

// AllStockTrades handles GET requests to retrieve the full trade log.
//
// Endpoint: GET /api/stock-trade
// Response: 200 OK with array of StockTrade
// Error: 500 Internal Server Error if retrieval fails
func (h *StockTradeHandler) AllStockTrades(w http.ResponseWriter, _ *http.Request) {
	trades, err := h.tradeService.GetStockTrades()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveStockTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, trades)
}

// Positions handles GET requests for the per-symbol position view.
//
// Endpoint: GET /api/stock-trade/positions
// Response: 200 OK with array of SymbolPosition sorted by net invested amount
// Error: 500 Internal Server Error if retrieval fails
func (h *StockTradeHandler) Positions(w http.ResponseWriter, _ *http.Request) {
	positions, err := h.tradeService.GetPositions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetPositions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, positions)
}

// CreateStockTrade handles POST requests to create a single trade.
// Validates the request body and applies the side-specific derivation rules.
//
// Endpoint: POST /api/stock-trade
// Request Body: CreateStockTradeRequest
// Response: 201 Created with the derived StockTrade
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *StockTradeHandler) CreateStockTrade(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateStockTradeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateStockTrade(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trade, err := h.tradeService.CreateStockTrade(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create stock trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trade)
}

// DeleteStockTrade handles DELETE requests to remove a trade.
//
// Endpoint: DELETE /api/stock-trade/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if the trade ID is invalid (validated by middleware)
// Error: 404 Not Found if the trade does not exist
// Error: 500 Internal Server Error if deletion fails
func (h *StockTradeHandler) DeleteStockTrade(w http.ResponseWriter, r *http.Request) {
	tradeID := chi.URLParam(r, "uuid")

	err := h.tradeService.DeleteStockTrade(r.Context(), tradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStockTradeNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrStockTradeNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete stock trade", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ImportStockTrades handles POST requests to import a batch of trades from a
// semi-structured text payload. The batch is fully validated before insertion
// and either commits whole or not at all.
//
// Endpoint: POST /api/stock-trade/import
// Request Body: ImportStockTradesRequest (payload)
// Response: 201 Created with the array of derived StockTrade records
// Error: 400 Bad Request on parse or item validation failure, naming the offending item
// Error: 500 Internal Server Error if the batch insert fails
func (h *StockTradeHandler) ImportStockTrades(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ImportStockTradesRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateImportStockTrades(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	trades, err := h.tradeService.ImportStockTrades(r.Context(), req.Payload)
	if err != nil {
		if errors.Is(err, apperrors.ErrImportValidation) || errors.Is(err, apperrors.ErrInvalidImportPayload) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrFailedToImportTrades.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImportTrades.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, trades)
}
