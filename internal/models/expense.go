package models

import "github.com/shopspring/decimal"

// Expense is a single spending record.
//
// The ID is issued by the store when the expense is created and is
// never reused.
type Expense struct {
	ID          string          `json:"id" firestore:"-"`
	UserID      string          `json:"user_id" firestore:"user_id"`
	Amount      decimal.Decimal `json:"amount" firestore:"amount"`
	CategoryID  string          `json:"category_id" firestore:"category_id"`
	Description string          `json:"description" firestore:"description"`
	Date        string          `json:"date" firestore:"date"`
}

// ExpenseCreate defines the values accepted when creating an expense.
// Amount and Description are required, everything else has a default.
type ExpenseCreate struct {
	UserID      string           `json:"user_id"`
	Amount      *decimal.Decimal `json:"amount"`
	CategoryID  string           `json:"category_id"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
}

// ExpenseUpdate defines the values accepted when updating an expense.
// Only fields that are set are applied.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal `json:"amount"`
	CategoryID  *string          `json:"category_id"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
}

// Empty reports whether the update does not set any field.
func (u ExpenseUpdate) Empty() bool {
	return u.Amount == nil && u.CategoryID == nil && u.Description == nil && u.Date == nil
}
