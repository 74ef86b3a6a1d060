package service

import (
	"github.com/shopspring/decimal"

	"github.com/Jaxa123/jaxa-tg/internal/store"
)

// Stats are aggregates folded over the whole order ledger.
type Stats struct {
	TotalOrders  int
	TotalRevenue decimal.Decimal
	AverageOrder decimal.Decimal
	// PerCategoryQuantity counts ordered units per menu category,
	// from the item snapshots (not the live catalog)
	PerCategoryQuantity map[string]int
}

// ComputeStats folds over every stored order and its item snapshots.
func ComputeStats(ledger store.OrderLedger) Stats {
	stats := Stats{
		TotalRevenue:        decimal.Zero,
		PerCategoryQuantity: make(map[string]int),
	}

	for _, order := range ledger.All() {
		stats.TotalOrders++
		stats.TotalRevenue = stats.TotalRevenue.Add(order.Total)
		for _, item := range order.Items {
			stats.PerCategoryQuantity[item.Category] += item.Quantity
		}
	}

	divisor := stats.TotalOrders
	if divisor == 0 {
		divisor = 1
	}
	stats.AverageOrder = stats.TotalRevenue.Div(decimal.NewFromInt(int64(divisor))).Round(2)
	return stats
}
