package core

import "fmt"

type StockStatus string

const (
	StockGood    StockStatus = "Good"
	StockLow     StockStatus = "Low"
	StockVeryLow StockStatus = "Very Low"
	StockUnknown StockStatus = "Unknown"
)

const (
	stockGoodPercent = 80
	stockLowPercent  = 40
)

// StockResult is the reconciled view of one inventory line.
type StockResult struct {
	UnitsSold int
	Percent   float64
	Status    StockStatus
}

// Reconcile derives units sold and a stock-health status from an opening
// count and a reported closing count. It is the single source of the
// percentage thresholds; both the staff update path and the admin
// reporting path go through it.
func Reconcile(openingStock int, closingStock *int) StockResult {
	if closingStock == nil || openingStock <= 0 {
		return StockResult{Status: StockUnknown}
	}

	unitsSold := openingStock - *closingStock
	if unitsSold < 0 {
		unitsSold = 0
	}

	percent := float64(*closingStock) / float64(openingStock) * 100

	status := StockVeryLow
	switch {
	case percent >= stockGoodPercent:
		status = StockGood
	case percent >= stockLowPercent:
		status = StockLow
	}

	return StockResult{
		UnitsSold: unitsSold,
		Percent:   percent,
		Status:    status,
	}
}

// Label renders the status the way the dashboards show it, e.g. "Good (85%)".
func (r StockResult) Label() string {
	if r.Status == StockUnknown {
		return string(StockUnknown)
	}
	return fmt.Sprintf("%s (%.0f%%)", r.Status, r.Percent)
}
