// Package storage provides the expense store.
//
// There are two implementations of the Store interface: one backed by
// Google Cloud Firestore and an in-memory one that is used when no
// Firestore connection can be established. Select picks one of the two
// at startup, callers only ever see the interface.
package storage

import (
	"context"
	"fmt"

	"github.com/smartbudget/backend/internal/models"
)

// Defaults applied to expenses when the corresponding field is not set.
const (
	DefaultUserID     = "user_id_123"
	DefaultCategoryID = "other"
	DefaultDate       = "1970-01-01"
)

// Store is the uniform contract both backends implement.
type Store interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, create models.ExpenseCreate) (models.Expense, error)
	UpdateExpense(ctx context.Context, id string, update models.ExpenseUpdate) (models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]models.Category, error)

	// CurrentBudget returns one budget record. When multiple records
	// exist the selection is arbitrary, when none exist a zero-limit
	// budget is returned.
	CurrentBudget(ctx context.Context) (models.Budget, error)

	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// IsMock reports whether this store is the in-memory fallback.
	IsMock() bool
	Ping(ctx context.Context) error
}

// prepareExpense validates an ExpenseCreate and converts it into the
// Expense to be stored, applying the defaults for unset fields. The ID
// is left empty, it is issued by the store.
func prepareExpense(create models.ExpenseCreate) (models.Expense, error) {
	if create.Amount == nil || create.Description == "" {
		return models.Expense{}, models.ErrMissingField
	}

	if create.Amount.IsNegative() {
		return models.Expense{}, models.ErrAmountNegative
	}

	expense := models.Expense{
		UserID:      create.UserID,
		Amount:      *create.Amount,
		CategoryID:  create.CategoryID,
		Description: create.Description,
		Date:        create.Date,
	}

	if expense.UserID == "" {
		expense.UserID = DefaultUserID
	}
	if expense.CategoryID == "" {
		expense.CategoryID = DefaultCategoryID
	}
	if expense.Date == "" {
		expense.Date = DefaultDate
	}

	return expense, nil
}

// applyUpdate applies the set fields of an ExpenseUpdate to an expense.
func applyUpdate(expense *models.Expense, update models.ExpenseUpdate) error {
	if update.Empty() {
		return models.ErrNoFields
	}

	if update.Amount != nil {
		if update.Amount.IsNegative() {
			return models.ErrAmountNegative
		}
		expense.Amount = *update.Amount
	}
	if update.CategoryID != nil {
		expense.CategoryID = *update.CategoryID
	}
	if update.Description != nil {
		expense.Description = *update.Description
	}
	if update.Date != nil {
		expense.Date = *update.Date
	}

	return nil
}

func errExpenseNotFound(id string) error {
	return fmt.Errorf("%w expense with ID %s", models.ErrNotFound, id)
}

func errUserNotFound(id string) error {
	return fmt.Errorf("%w user matching %s", models.ErrNotFound, id)
}
