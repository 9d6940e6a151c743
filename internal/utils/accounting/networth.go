package accounting

import (
	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComposeNetWorth combines the cash balance with valued investments and
// amortized debts. Remaining debt is summed signed, per debt.
func ComposeNetWorth(cashBalance decimal.Decimal, investments []domain.ValuedInvestment, debts []domain.AmortizedDebt) domain.FinancialSummary {
	portfolio := SummarizePortfolio(investments)

	totalDebt := decimal.Zero
	remaining := decimal.Zero
	for _, d := range debts {
		totalDebt = totalDebt.Add(d.TotalAmount)
		remaining = remaining.Add(d.RemainingAmount)
	}

	totalAssets := cashBalance.Add(portfolio.TotalCurrentValue)
	return domain.FinancialSummary{
		CashBalance:             cashBalance,
		TotalInvested:           portfolio.TotalInvested,
		InvestmentsCurrentValue: portfolio.TotalCurrentValue,
		TotalAssets:             totalAssets,
		TotalDebtAmount:         totalDebt,
		RemainingDebt:           remaining,
		NetWorth:                totalAssets.Sub(remaining),
	}
}
