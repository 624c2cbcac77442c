package dto

import "github.com/shopspring/decimal"

// DistributePointsRequest applies the flat weight replacement of the
// authoring "distribute points" action. Points must be >= 0.
type DistributePointsRequest struct {
	Points decimal.Decimal `json:"points"`
}
