package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/dto"
	"github.com/SscSPs/travel_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	now                 func() time.Time
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		now:                 time.Now,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.POST("/refresh", h.refreshRates)
		rates.GET("/last-update", h.getLastUpdate)
		rates.POST("/convert", h.convert)
	}
	rg.GET("/currencies", h.listCurrencies)
}

// getRates handles GET /rates
func (h *exchangeRateHandler) getRates(c *gin.Context) {
	snapshot := h.exchangeRateService.CurrentRates()
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No exchange rates available yet"})
		return
	}
	c.JSON(http.StatusOK, dto.ToRatesResponse(snapshot, h.exchangeRateService.IsStale(), h.now()))
}

// refreshRates handles POST /rates/refresh. The fetch is unconditional and surfaces its error.
func (h *exchangeRateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh exchange rates")

	snapshot, err := h.exchangeRateService.Refresh(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to refresh exchange rates")
		return
	}

	logger.Info("Exchange rates refreshed", slog.Int("currencies", len(snapshot.Table)))
	c.JSON(http.StatusOK, dto.ToRatesResponse(snapshot, false, h.now()))
}

// getLastUpdate handles GET /rates/last-update. Asking for it is also a trigger for the
// one automatic refresh per process, which runs in the background.
func (h *exchangeRateHandler) getLastUpdate(c *gin.Context) {
	go h.exchangeRateService.AutoRefresh(context.WithoutCancel(c.Request.Context()))

	resp := dto.LastUpdateResponse{Stale: h.exchangeRateService.IsStale()}
	if snapshot := h.exchangeRateService.CurrentRates(); snapshot != nil {
		ns := snapshot.FetchedAt.UnixNano()
		resp.LastUpdate = &ns
	}
	c.JSON(http.StatusOK, resp)
}

// convert handles POST /rates/convert, a conversion preview that stores nothing.
func (h *exchangeRateHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if !bindJSON(c, logger, &req, "Convert") {
		return
	}

	converted, snapshot, err := h.exchangeRateService.Convert(req.Amount, domain.CurrencyCode(req.From), domain.CurrencyCode(req.To))
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert amount")
		return
	}
	c.JSON(http.StatusOK, dto.ToConvertResponse(req, converted, snapshot))
}

// listCurrencies handles GET /currencies
func (h *exchangeRateHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrenciesResponse(h.exchangeRateService.AvailableCurrencies()))
}
