package models

import "github.com/shopspring/decimal"

// Category is a spending bucket with a budget limit.
//
// Categories are read-only for the API, they are seeded out-of-band.
type Category struct {
	ID     string          `json:"id" firestore:"-"`
	Name   string          `json:"name" firestore:"name"`
	Budget decimal.Decimal `json:"budget" firestore:"budget"`
}
