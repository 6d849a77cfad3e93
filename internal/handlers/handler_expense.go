package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/tripmates/trip_planner_app/internal/core/ports/services"
	"github.com/tripmates/trip_planner_app/internal/dto"
	"github.com/tripmates/trip_planner_app/internal/middleware"
)

// expenseHandler handles HTTP requests related to a trip's expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newExpenseHandler creates a new expenseHandler.
func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{
		expenseService: es,
	}
}

// registerExpenseRoutes registers expense routes nested under a specific trip.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expense_id", h.getExpense)
		expenses.PUT("/:expense_id", h.updateExpense)
		expenses.DELETE("/:expense_id", h.deleteExpense)
	}

	// Derived financial views over the trip's expenses
	rg.GET("/balances", h.getBalances)
	rg.GET("/settlements", h.getSettlements)
}

// createExpense godoc
// @Summary Create an expense
// @Description Creates a shared expense with equal or custom splits. Approved members only.
// @Tags expenses
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or splits"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Trip is not active"
// @Security BearerAuth
// @Router /trips/{trip_id}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	tripID := c.Param("trip_id")
	expense, err := h.expenseService.CreateExpense(c.Request.Context(), tripID, req, userID)
	if err != nil {
		respondTripError(c, err, "create expense")
		return
	}

	logger.Info("Expense created successfully",
		slog.String("trip_id", tripID),
		slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List trip expenses
// @Description Retrieves a page of a trip's expenses, newest first. Pass nextToken to continue.
// @Tags expenses
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param limit query int false "Page size" default(20) maximum(100)
// @Param nextToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	expenses, nextToken, err := h.expenseService.ListTripExpenses(c.Request.Context(), c.Param("trip_id"), userID, params.Limit, params.NextToken)
	if err != nil {
		respondTripError(c, err, "list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses, nextToken))
}

// getExpense godoc
// @Summary Get expense details
// @Description Retrieves an expense with its splits. Approved members only.
// @Tags expenses
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/expenses/{expense_id} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("trip_id"), c.Param("expense_id"), userID)
	if err != nil {
		respondTripError(c, err, "get expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Replaces an expense's details and splits. Payer or trip owner only.
// @Tags expenses
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param expense_id path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Updated expense details"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/expenses/{expense_id} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("trip_id"), c.Param("expense_id"), req, userID)
	if err != nil {
		respondTripError(c, err, "update expense")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Description Removes an expense and its splits. Payer or trip owner only.
// @Tags expenses
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param expense_id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/expenses/{expense_id} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("trip_id"), c.Param("expense_id"), userID); err != nil {
		respondTripError(c, err, "delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}

// getBalances godoc
// @Summary Get trip balances
// @Description Computes per-participant paid, owed, and net totals for the trip.
// @Tags balances
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.ListBalancesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/balances [get]
func (h *expenseHandler) getBalances(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	balances, err := h.expenseService.GetTripBalances(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondTripError(c, err, "compute balances")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBalancesResponse(balances))
}

// getSettlements godoc
// @Summary Get settlement plan
// @Description Computes the transfer plan that settles the trip's outstanding balances.
// @Tags balances
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.ListSettlementsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /trips/{trip_id}/settlements [get]
func (h *expenseHandler) getSettlements(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settlements, err := h.expenseService.GetTripSettlements(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondTripError(c, err, "compute settlements")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSettlementsResponse(settlements))
}
