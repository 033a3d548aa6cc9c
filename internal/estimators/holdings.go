package estimators

import (
	"time"

	"github.com/rpgo/taxhawk/internal/domain"
	"github.com/shopspring/decimal"
)

// EstimateHoldingsFromGain builds a single synthetic Holding representing a
// lump-sum equity position, for callers that only know an invested amount,
// a current value, and a purchase date rather than a full portfolio.
func EstimateHoldingsFromGain(securityName string, purchaseDate time.Time, invested, currentValue decimal.Decimal) domain.Holdings {
	return domain.Holdings{
		Items: []domain.Holding{
			{
				SecurityName:  securityName,
				SecurityType:  domain.EquityMF,
				PurchaseDate:  purchaseDate,
				PurchasePrice: invested,
				Quantity:      decimal.NewFromInt(1),
				CurrentPrice:  currentValue,
			},
		},
	}
}
