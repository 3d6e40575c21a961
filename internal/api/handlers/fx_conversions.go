package handlers

import (
	"net/http"
	"strconv"

	"github.com/naruebet/Finance-Tracker-Backend/internal/api/request"
	"github.com/naruebet/Finance-Tracker-Backend/internal/api/response"
	"github.com/naruebet/Finance-Tracker-Backend/internal/apperrors"
	"github.com/naruebet/Finance-Tracker-Backend/internal/service"
	"github.com/naruebet/Finance-Tracker-Backend/internal/validation"
)

// FxConversionHandler handles HTTP requests for FX conversion endpoints.
type FxConversionHandler struct {
	fxService *service.FxService
}

// NewFxConversionHandler creates a new FxConversionHandler with the provided service dependency.
func NewFxConversionHandler(fxService *service.FxService) *FxConversionHandler {
	return &FxConversionHandler{
		fxService: fxService,
	}
}

// AllFxConversions handles GET requests to retrieve the full conversion log.
//
// Endpoint: GET /api/fx-conversion
// Response: 200 OK with array of FxConversion
// Error: 500 Internal Server Error if retrieval fails
func (h *FxConversionHandler) AllFxConversions(w http.ResponseWriter, _ *http.Request) {
	conversions, err := h.fxService.GetFxConversions()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFxConversions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, conversions)
}

// FxSummary handles GET requests for the filtered FX aggregate view.
//
// Query parameters (all optional, combined with AND):
//   - year, month: numeric, or "all" to disable the predicate; when omitted
//     they default to the most recent conversion's date
//   - from, to: currency codes
//
// Endpoint: GET /api/fx-conversion/summary?year=&month=&from=&to=
// Response: 200 OK with FxSummary
// Error: 400 Bad Request on an unparsable year or month
// Error: 500 Internal Server Error if retrieval fails
func (h *FxConversionHandler) FxSummary(w http.ResponseWriter, r *http.Request) {
	filter := service.FxFilter{
		FromCurrency: r.URL.Query().Get("from"),
		ToCurrency:   r.URL.Query().Get("to"),
	}

	var err error
	if filter.Year, err = parsePeriodParam(r.URL.Query().Get("year")); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid year parameter", err.Error())
		return
	}
	if filter.Month, err = parsePeriodParam(r.URL.Query().Get("month")); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month parameter", err.Error())
		return
	}

	summary, err := h.fxService.GetFxSummary(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetFxSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// CreateFxConversion handles POST requests to create a new FX conversion.
// Validates the request body; a missing exchange rate is derived from the
// two amounts.
//
// Endpoint: POST /api/fx-conversion
// Request Body: CreateFxConversionRequest
// Response: 201 Created with FxConversion
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *FxConversionHandler) CreateFxConversion(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFxConversionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFxConversion(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	conversion, err := h.fxService.CreateFxConversion(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create fx conversion", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, conversion)
}

// parsePeriodParam maps a year/month query value: empty uses the service's
// defaulting rule, "all" disables the predicate, anything else must be numeric.
func parsePeriodParam(value string) (int, error) {
	switch value {
	case "":
		return 0, nil
	case "all":
		return service.FilterAll, nil
	default:
		return strconv.Atoi(value)
	}
}
