package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/travel_budget_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_budget_app/internal/core/ports/services"
	"github.com/SscSPs/travel_budget_app/internal/dto"
	"github.com/SscSPs/travel_budget_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers expense routes, both nested under a trip and by expense ID.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	tripExpenses := rg.Group("/trips/:tripID/expenses")
	{
		tripExpenses.POST("", h.createExpense)
		tripExpenses.GET("", h.listExpenses)
		tripExpenses.GET("/recent", h.listRecentExpenses)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.GET("/:expenseID", h.getExpense)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}

	rg.GET("/categories", h.listCategories)
}

// createExpense handles POST /trips/:tripID/expenses
func (h *expenseHandler) createExpense(c *gin.Context) {
	tripID := c.Param("tripID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))
	var req dto.CreateExpenseRequest
	if !bindJSON(c, logger, &req, "CreateExpense") {
		return
	}
	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create expense",
		slog.String("amount", req.Amount.String()),
		slog.String("local_currency", req.LocalCurrency),
		slog.String("category", req.Category),
	)

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), tripID, req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create expense")
		return
	}

	logger.Info("Expense created successfully", slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses handles GET /trips/:tripID/expenses
func (h *expenseHandler) listExpenses(c *gin.Context) {
	tripID := c.Param("tripID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), tripID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}

// listRecentExpenses handles GET /trips/:tripID/expenses/recent
func (h *expenseHandler) listRecentExpenses(c *gin.Context) {
	tripID := c.Param("tripID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))

	expenses, err := h.expenseService.ListRecentExpenses(c.Request.Context(), tripID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list recent expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}

// getExpense handles GET /expenses/:expenseID
func (h *expenseHandler) getExpense(c *gin.Context) {
	expenseID := c.Param("expenseID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", expenseID))

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense handles PUT /expenses/:expenseID
func (h *expenseHandler) updateExpense(c *gin.Context) {
	expenseID := c.Param("expenseID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", expenseID))
	var req dto.UpdateExpenseRequest
	if !bindJSON(c, logger, &req, "UpdateExpense") {
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), expenseID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update expense")
		return
	}

	logger.Info("Expense updated successfully")
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense handles DELETE /expenses/:expenseID
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	expenseID := c.Param("expenseID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("expense_id", expenseID))

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		respondWithError(c, logger, err, "Failed to delete expense")
		return
	}

	logger.Info("Expense deleted successfully")
	c.Status(http.StatusNoContent)
}

// listCategories handles GET /categories
func (h *expenseHandler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCategoriesResponse(domain.Categories))
}
