package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/SscSPs/bizledger/internal/utils/accounting"
)

func TestComposeNetWorth(t *testing.T) {
	valued := accounting.ValueInvestments([]domain.Investment{
		{Quantity: dec("30"), PurchasePrice: dec("90"), CurrentPrice: dec("100")},
	})
	debts := accounting.AmortizeDebts(
		[]domain.Debt{{DebtID: "d1", TotalAmount: dec("2500")}},
		[]domain.Transaction{debtPayment("500", "d1")},
	)

	summary := accounting.ComposeNetWorth(dec("5000"), valued, debts)

	assertDecimal(t, "5000", summary.CashBalance)
	assertDecimal(t, "2700", summary.TotalInvested)
	assertDecimal(t, "3000", summary.InvestmentsCurrentValue)
	assertDecimal(t, "8000", summary.TotalAssets)
	assertDecimal(t, "2500", summary.TotalDebtAmount)
	assertDecimal(t, "2000", summary.RemainingDebt)
	assertDecimal(t, "6000", summary.NetWorth)
}

func TestComposeNetWorth_OverpaidDebtRaisesNetWorth(t *testing.T) {
	debts := accounting.AmortizeDebts(
		[]domain.Debt{{DebtID: "d1", TotalAmount: dec("100")}},
		[]domain.Transaction{debtPayment("150", "d1")},
	)

	summary := accounting.ComposeNetWorth(dec("0"), nil, debts)

	assertDecimal(t, "-50", summary.RemainingDebt)
	assertDecimal(t, "50", summary.NetWorth)
}

func TestComposeNetWorth_Empty(t *testing.T) {
	summary := accounting.ComposeNetWorth(accounting.CashBalance(nil), nil, nil)

	assertDecimal(t, "0", summary.NetWorth)
	assertDecimal(t, "0", summary.TotalAssets)
}

func TestComposeNetWorth_Identity(t *testing.T) {
	txs := []domain.Transaction{
		revenue("1234.56", day(2024, time.January, 1), ""),
		expense("234.50", day(2024, time.January, 2), ""),
		debtPayment("100.06", "d1"),
	}
	valued := accounting.ValueInvestments([]domain.Investment{
		{Quantity: dec("3.5"), PurchasePrice: dec("10.10"), CurrentPrice: dec("11.11")},
	})
	debts := accounting.AmortizeDebts([]domain.Debt{{DebtID: "d1", TotalAmount: dec("999.99")}}, txs)

	s := accounting.ComposeNetWorth(accounting.CashBalance(txs), valued, debts)

	want := s.CashBalance.Add(s.InvestmentsCurrentValue).Sub(s.RemainingDebt)
	assertDecimal(t, want.String(), s.NetWorth)
}
