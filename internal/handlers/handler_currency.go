package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/SscSPs/pos_monedas/internal/apperrors"
	"github.com/SscSPs/pos_monedas/internal/core/domain"
	portssvc "github.com/SscSPs/pos_monedas/internal/core/ports/services"
	"github.com/SscSPs/pos_monedas/internal/dto"
	"github.com/SscSPs/pos_monedas/internal/envelope"
	"github.com/SscSPs/pos_monedas/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Request decoding messages returned to the caller.
const (
	msgInvalidBody        = "El cuerpo de la solicitud debe ser un JSON válido"
	msgInvalidCurrencyID  = "El monedaId debe ser un número positivo válido"
	msgMissingQueryParams = "Parámetros de query requeridos: %s"
	msgInvalidQueryParams = "Los parámetros pageNumber y pageSize deben ser números enteros válidos"
)

const (
	detailCreated = "Resource created successfully"
	detailDeleted = "Resource deleted successfully"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	monedas := rg.Group("/pos/monedas")
	{
		monedas.POST("", h.createCurrency)
		monedas.GET("", h.listCurrencies)
		monedas.GET("/:monedaId", h.getCurrency)
		monedas.PUT("/:monedaId", h.updateCurrency)
		monedas.DELETE("/:monedaId", h.deleteCurrency)
	}
}

// createCurrency godoc
// @Summary Create a currency
// @Description Creates a currency. codigoIso is uppercased before validation.
// @Tags monedas
// @Accept  json
// @Produce  json
// @Param   message-uuid header string true "Caller correlation id"
// @Param   request-app-id header string true "Caller application id"
// @Param   moneda body dto.CurrencyRequest true "Currency details"
// @Success 201 {object} envelope.SuccessResponse[domain.Currency]
// @Failure 400 {object} envelope.ErrorResponse "Missing headers or invalid input"
// @Failure 409 {object} envelope.ErrorResponse "codigoIso already exists"
// @Failure 500 {object} envelope.ErrorResponse
// @Router /pos/monedas [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	req, err := bindCurrencyRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Received request to create currency", slog.String("codigo_iso", req.CodigoISO))

	created, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, created, envelope.WithResponseDetails(detailCreated))
}

// listCurrencies godoc
// @Summary List currencies
// @Description Returns one page of currencies ordered by id. Both query parameters are required.
// @Tags monedas
// @Produce  json
// @Param   message-uuid header string true "Caller correlation id"
// @Param   request-app-id header string true "Caller application id"
// @Param   pageNumber query int true "Page number, starting at 1" minimum(1)
// @Param   pageSize query int true "Page size" minimum(1) maximum(500)
// @Success 200 {object} envelope.PaginatedResponse[dto.ListCurrenciesResponse]
// @Failure 400 {object} envelope.ErrorResponse
// @Failure 500 {object} envelope.ErrorResponse
// @Router /pos/monedas [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	var query dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, apperrors.NewValidationError("%s", msgInvalidQueryParams))
		return
	}

	params, err := parsePaginationQuery(query)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.currencyService.ListCurrencies(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	respondPaginated(c, http.StatusOK, dto.ToListCurrenciesResponse(page.Currencies), page.Pagination)
}

// getCurrency godoc
// @Summary Get a currency by id
// @Tags monedas
// @Produce  json
// @Param   message-uuid header string true "Caller correlation id"
// @Param   request-app-id header string true "Caller application id"
// @Param   monedaId path int true "Currency id"
// @Success 200 {object} envelope.SuccessResponse[domain.Currency]
// @Failure 400 {object} envelope.ErrorResponse
// @Failure 404 {object} envelope.ErrorResponse "Currency not found"
// @Failure 500 {object} envelope.ErrorResponse
// @Router /pos/monedas/{monedaId} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currencyID, ok := currencyIDParam(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, currency)
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Replaces every field of a currency except its id.
// @Tags monedas
// @Accept  json
// @Produce  json
// @Param   message-uuid header string true "Caller correlation id"
// @Param   request-app-id header string true "Caller application id"
// @Param   monedaId path int true "Currency id"
// @Param   moneda body dto.CurrencyRequest true "Currency details"
// @Success 200 {object} envelope.SuccessResponse[domain.Currency]
// @Failure 400 {object} envelope.ErrorResponse
// @Failure 404 {object} envelope.ErrorResponse "Currency not found"
// @Failure 409 {object} envelope.ErrorResponse "codigoIso used by another currency"
// @Failure 500 {object} envelope.ErrorResponse
// @Router /pos/monedas/{monedaId} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	currencyID, ok := currencyIDParam(c)
	if !ok {
		return
	}

	req, err := bindCurrencyRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromContext(c).Info("Currency updated", slog.Int64("moneda_id", currencyID))
	respondSuccess(c, http.StatusOK, updated)
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Deletes a currency and returns its last stored values.
// @Tags monedas
// @Produce  json
// @Param   message-uuid header string true "Caller correlation id"
// @Param   request-app-id header string true "Caller application id"
// @Param   monedaId path int true "Currency id"
// @Success 200 {object} envelope.SuccessResponse[domain.Currency]
// @Failure 400 {object} envelope.ErrorResponse
// @Failure 404 {object} envelope.ErrorResponse "Currency not found"
// @Failure 500 {object} envelope.ErrorResponse
// @Router /pos/monedas/{monedaId} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	currencyID, ok := currencyIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, deleted, envelope.WithResponseDetails(detailDeleted))
}

// currencyIDParam reads the monedaId path segment. Anything but digits is treated as an
// unknown route; digits that do not form a usable id are a validation failure.
func currencyIDParam(c *gin.Context) (int64, bool) {
	raw := c.Param("monedaId")
	if !isDigits(raw) {
		routeNotFound(c)
		return 0, false
	}
	currencyID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, apperrors.NewValidationError("%s", msgInvalidCurrencyID))
		return 0, false
	}
	return currencyID, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// bindCurrencyRequest decodes the JSON body. An empty body decodes as an empty object.
// Mistyped fields are left to the service; only unparseable bodies fail here.
func bindCurrencyRequest(c *gin.Context) (dto.CurrencyRequest, error) {
	var req dto.CurrencyRequest
	err := c.ShouldBindJSON(&req)
	if err == nil || errors.Is(err, io.EOF) {
		return req, nil
	}

	middleware.GetLoggerFromContext(c).Warn("Failed to bind JSON for currency request", slog.String("error", err.Error()))
	return dto.CurrencyRequest{}, apperrors.NewValidationError("%s", msgInvalidBody)
}

// parsePaginationQuery checks presence and integer syntax; range checks belong to the service.
func parsePaginationQuery(query dto.ListCurrenciesParams) (domain.PaginationParams, error) {
	var missing []string
	if query.PageNumber == "" {
		missing = append(missing, "pageNumber")
	}
	if query.PageSize == "" {
		missing = append(missing, "pageSize")
	}
	if len(missing) > 0 {
		return domain.PaginationParams{}, apperrors.NewValidationError(msgMissingQueryParams, strings.Join(missing, ", "))
	}

	pageNumber, errNumber := strconv.Atoi(query.PageNumber)
	pageSize, errSize := strconv.Atoi(query.PageSize)
	if errNumber != nil || errSize != nil {
		return domain.PaginationParams{}, apperrors.NewValidationError("%s", msgInvalidQueryParams)
	}

	return domain.PaginationParams{PageNumber: pageNumber, PageSize: pageSize}, nil
}
