// Package models contains the domain types shared by the stores,
// the aggregator and the HTTP controllers.
package models

import "github.com/shopspring/decimal"

func init() {
	// Money figures are JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}
