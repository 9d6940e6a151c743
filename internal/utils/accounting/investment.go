package accounting

import (
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PerformancePercent returns (current/cost - 1) * 100, or 0 when cost is not
// positive.
func PerformancePercent(current, cost decimal.Decimal) decimal.Decimal {
	if !cost.IsPositive() {
		return decimal.Zero
	}
	return current.Div(cost).Sub(decimal.NewFromInt(1)).Mul(hundred)
}

// ValueInvestment computes the derived fields of a single holding.
func ValueInvestment(inv domain.Investment) domain.ValuedInvestment {
	purchaseValue := inv.Quantity.Mul(inv.PurchasePrice)
	currentValue := inv.Quantity.Mul(inv.CurrentPrice)
	return domain.ValuedInvestment{
		Investment:    inv,
		PurchaseValue: purchaseValue,
		CurrentValue:  currentValue,
		Performance:   PerformancePercent(currentValue, purchaseValue),
	}
}

// ValueInvestments values every holding, preserving input order.
func ValueInvestments(investments []domain.Investment) []domain.ValuedInvestment {
	valued := make([]domain.ValuedInvestment, len(investments))
	for i, inv := range investments {
		valued[i] = ValueInvestment(inv)
	}
	return valued
}

// SummarizePortfolio aggregates valued holdings.
func SummarizePortfolio(valued []domain.ValuedInvestment) domain.PortfolioSummary {
	invested := decimal.Zero
	current := decimal.Zero
	for _, v := range valued {
		invested = invested.Add(v.PurchaseValue)
		current = current.Add(v.CurrentValue)
	}
	return domain.PortfolioSummary{
		TotalInvested:     invested,
		TotalCurrentValue: current,
		Performance:       PerformancePercent(current, invested),
	}
}
