package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/middleware"
	"github.com/SscSPs/travel_budget_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerValidators(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerHomeRoutes(v1)
	registerTripRoutes(v1, service.Trip)
	registerExpenseRoutes(v1, service.Expense)
	registerExchangeRateRoutes(v1, service.ExchangeRate)
	registerSettingsRoutes(v1, service.Settings, service.ExchangeRate)
}

// registerValidators adds the custom binding tags used by the DTOs.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return domain.CurrencyCode(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("failed to register currency validator: %w", err)
	}
	if err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("failed to register category validator: %w", err)
	}
	return nil
}
