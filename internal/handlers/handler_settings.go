package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/dto"
	"github.com/SscSPs/travel_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests related to the rate provider API key.
type settingsHandler struct {
	settingsService     portssvc.SettingsSvcFacade
	exchangeRateService portssvc.ExchangeRateRefresherSvc
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade, ers portssvc.ExchangeRateRefresherSvc) *settingsHandler {
	return &settingsHandler{
		settingsService:     ss,
		exchangeRateService: ers,
	}
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade, exchangeRateService portssvc.ExchangeRateRefresherSvc) {
	h := newSettingsHandler(settingsService, exchangeRateService)

	settings := rg.Group("/settings")
	{
		settings.GET("/api-key", h.getAPIKeyStatus)
		settings.PUT("/api-key", h.setAPIKey)
		settings.DELETE("/api-key", h.deleteAPIKey)
		settings.GET("/expenses-enabled", h.getExpensesEnabled)
	}
}

func (h *settingsHandler) statusResponse() dto.APIKeyStatusResponse {
	status := h.settingsService.APIKeyStatus()
	return dto.APIKeyStatusResponse{
		Configured:      status.Configured,
		MaskedKey:       status.MaskedKey,
		ExpensesEnabled: h.settingsService.ExpensesEnabled(),
	}
}

// getAPIKeyStatus handles GET /settings/api-key
func (h *settingsHandler) getAPIKeyStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.statusResponse())
}

// setAPIKey handles PUT /settings/api-key. A valid key is stored and rates are refreshed
// right away; a failed refresh does not undo the save and is reported in the response.
func (h *settingsHandler) setAPIKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// The binding error may echo the key, so it is not logged.
		logger.Warn("Failed to bind JSON for SetAPIKey")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: apiKey is required"})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.settingsService.ValidateAndSaveAPIKey(c.Request.Context(), req.APIKey, userID); err != nil {
		respondWithError(c, logger, err, "Failed to save API key")
		return
	}

	refreshed := true
	if _, err := h.exchangeRateService.Refresh(c.Request.Context()); err != nil {
		refreshed = false
		logger.Warn("API key saved but the rate refresh failed", slog.String("error", err.Error()))
	}

	resp := h.statusResponse()
	resp.RatesRefreshed = &refreshed
	logger.Info("API key configured", slog.Bool("rates_refreshed", refreshed))
	c.JSON(http.StatusOK, resp)
}

// deleteAPIKey handles DELETE /settings/api-key
func (h *settingsHandler) deleteAPIKey(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.settingsService.DeleteAPIKey(c.Request.Context()); err != nil {
		respondWithError(c, logger, err, "Failed to delete API key")
		return
	}

	logger.Info("API key removed")
	c.Status(http.StatusNoContent)
}

// getExpensesEnabled handles GET /settings/expenses-enabled
func (h *settingsHandler) getExpensesEnabled(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ExpensesEnabledResponse{Enabled: h.settingsService.ExpensesEnabled()})
}
