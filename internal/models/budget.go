package models

import "github.com/shopspring/decimal"

// Budget is the spending limit for one month.
type Budget struct {
	ID           string          `json:"id" firestore:"-"`
	UserID       string          `json:"user_id" firestore:"user_id"`
	Month        string          `json:"month" firestore:"month"`
	TotalLimit   decimal.Decimal `json:"total_limit" firestore:"total_limit"`
	CurrentSpent decimal.Decimal `json:"current_spent" firestore:"current_spent"`
}
