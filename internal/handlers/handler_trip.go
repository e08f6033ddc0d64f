package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/dto"
	"github.com/SscSPs/travel_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tripHandler handles HTTP requests related to trips.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

// newTripHandler creates a new tripHandler.
func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{
		tripService: ts,
	}
}

// registerTripRoutes registers routes related to trips.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := newTripHandler(tripService)

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/active", h.getActiveTrip)
		trips.GET("/:tripID", h.getTrip)
		trips.PUT("/:tripID", h.updateTrip)
		trips.DELETE("/:tripID", h.deleteTrip)
		trips.PUT("/:tripID/active", h.setActiveTrip)
		trips.GET("/:tripID/summary", h.getTripSummary)
	}
}

// createTrip handles POST /trips
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTripRequest
	if !bindJSON(c, logger, &req, "CreateTrip") {
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create trip",
		slog.String("name", req.Name),
		slog.String("primary_currency", req.PrimaryCurrency),
	)

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create trip")
		return
	}

	logger.Info("Trip created successfully", slog.String("trip_id", trip.TripID))
	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// listTrips handles GET /trips
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trips, err := h.tripService.ListTrips(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list trips")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTripsResponse(trips))
}

// getActiveTrip handles GET /trips/active
func (h *tripHandler) getActiveTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	trip, err := h.tripService.GetActiveTrip(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get active trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// getTrip handles GET /trips/:tripID
func (h *tripHandler) getTrip(c *gin.Context) {
	tripID := c.Param("tripID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))

	trip, err := h.tripService.GetTripByID(c.Request.Context(), tripID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// updateTrip handles PUT /trips/:tripID
func (h *tripHandler) updateTrip(c *gin.Context) {
	tripID := c.Param("tripID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))
	var req dto.UpdateTripRequest
	if !bindJSON(c, logger, &req, "UpdateTrip") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), tripID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update trip")
		return
	}

	logger.Info("Trip updated successfully")
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// deleteTrip handles DELETE /trips/:tripID
func (h *tripHandler) deleteTrip(c *gin.Context) {
	tripID := c.Param("tripID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))

	if err := h.tripService.DeleteTrip(c.Request.Context(), tripID); err != nil {
		respondWithError(c, logger, err, "Failed to delete trip")
		return
	}

	logger.Info("Trip deleted successfully")
	c.Status(http.StatusNoContent)
}

// setActiveTrip handles PUT /trips/:tripID/active
func (h *tripHandler) setActiveTrip(c *gin.Context) {
	tripID := c.Param("tripID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	trip, err := h.tripService.SetActiveTrip(c.Request.Context(), tripID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to set active trip")
		return
	}

	logger.Info("Active trip changed")
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// getTripSummary handles GET /trips/:tripID/summary
func (h *tripHandler) getTripSummary(c *gin.Context) {
	tripID := c.Param("tripID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))

	summary, err := h.tripService.GetTripSummary(c.Request.Context(), tripID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to summarize trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripSummaryResponse(summary))
}
