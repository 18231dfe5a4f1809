package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartbudget/backend/internal/httputil"
	"github.com/smartbudget/backend/internal/models"
	"github.com/smartbudget/backend/internal/storage"
)

// ExpenseDeleteResponse confirms the deletion of an expense.
type ExpenseDeleteResponse struct {
	Message string `json:"message" example:"Expense deleted"`
	ID      string `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
}

type ExpenseController struct {
	store storage.Store
}

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup, store storage.Store) {
	ctrl := ExpenseController{store: store}

	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", ctrl.List)
		r.POST("", ctrl.Create)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsPutDelete)
		r.PUT("/:id", ctrl.Update)
		r.DELETE("/:id", ctrl.Delete)
	}
}

// List returns all expenses. The ordering is unspecified.
func (ctrl ExpenseController) List(c *gin.Context) {
	expenses, err := ctrl.store.ListExpenses(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// Create stores a new expense and returns it with its generated ID.
func (ctrl ExpenseController) Create(c *gin.Context) {
	var create models.ExpenseCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	expense, err := ctrl.store.CreateExpense(c.Request.Context(), create)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// Update applies a partial update to an expense.
func (ctrl ExpenseController) Update(c *gin.Context) {
	var update models.ExpenseUpdate
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	expense, err := ctrl.store.UpdateExpense(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Delete removes an expense permanently.
func (ctrl ExpenseController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.store.DeleteExpense(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExpenseDeleteResponse{
		Message: "Expense deleted",
		ID:      id,
	})
}
