package accounting

import (
	"fmt"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaidByDebt indexes the summed amount of linked transactions per debt ID in a
// single pass. The link is trusted regardless of the transaction direction.
func PaidByDebt(transactions []domain.Transaction) map[string]decimal.Decimal {
	paid := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if !txn.IsDebtPayment() {
			continue
		}
		id := *txn.DebtPaymentForID
		paid[id] = paid[id].Add(txn.Amount)
	}
	return paid
}

// AmortizeDebt annotates a debt using a PaidByDebt index. Payments pointing to
// debts that no longer exist are simply never looked up.
func AmortizeDebt(debt domain.Debt, paidIndex map[string]decimal.Decimal) domain.AmortizedDebt {
	paid, ok := paidIndex[debt.DebtID]
	if !ok {
		paid = decimal.Zero
	}
	remaining := debt.TotalAmount.Sub(paid)
	return domain.AmortizedDebt{
		Debt:            debt,
		PaidAmount:      paid,
		RemainingAmount: remaining,
		Progress:        DebtProgress(paid, debt.TotalAmount),
		Overpaid:        remaining.IsNegative(),
	}
}

// DebtProgress is the paid share of total as a percentage, capped at 100.
// A non-positive total yields 0.
func DebtProgress(paid, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(paid.Div(total).Mul(hundred), hundred)
}

// AmortizeDebts annotates every debt against the full transaction set.
func AmortizeDebts(debts []domain.Debt, transactions []domain.Transaction) []domain.AmortizedDebt {
	paidIndex := PaidByDebt(transactions)
	amortized := make([]domain.AmortizedDebt, len(debts))
	for i, d := range debts {
		amortized[i] = AmortizeDebt(d, paidIndex)
	}
	return amortized
}

// NewDebtPayment builds the expense transaction that records an installment
// paid on debt. The caller assigns the ID and persists it.
func NewDebtPayment(debt domain.Debt, amount decimal.Decimal, date time.Time) (domain.Transaction, error) {
	if !amount.IsPositive() {
		return domain.Transaction{}, fmt.Errorf("installment amount must be positive, got %s", amount.String())
	}
	debtID := debt.DebtID
	return domain.Transaction{
		CompanyID:        debt.CompanyID,
		Amount:           amount,
		Date:             date,
		Category:         domain.LoanPaymentCategory,
		Description:      fmt.Sprintf("Installment payment - %s", debt.Name),
		Direction:        domain.Expense,
		PaymentMethod:    domain.PaymentBankTransfer,
		Recurrence:       domain.RecurrenceNone,
		Counterparty:     debt.Lender,
		DebtPaymentForID: &debtID,
	}, nil
}
