package domain

// Recommended labels offered at the input boundary. Stored values are open
// strings so legacy rows with unlisted labels keep loading.

// LoanPaymentCategory is the category stamped on every debt installment.
const LoanPaymentCategory = "Loan Payment"

var ExpenseCategories = []string{
	"Suppliers",
	"Payroll and Charges",
	"Rent",
	"Taxes and Fees",
	"Marketing and Sales",
	"Utilities (Power, Water, Internet)",
	"Software and Subscriptions",
	"Maintenance and Repairs",
	"Administrative Expenses",
	LoanPaymentCategory,
	"Other Operating Expenses",
}

var IncomeCategories = []string{
	"Product Sales",
	"Services Rendered",
	"Investment Interest",
	"Asset Sale",
	"Other Income",
}

const (
	PaymentCreditCard   = "Credit Card"
	PaymentDebitCard    = "Debit Card"
	PaymentBankTransfer = "Bank Transfer"
	PaymentPIX          = "PIX"
	PaymentCash         = "Cash"
	PaymentBoleto       = "Boleto"
)

var PaymentMethods = []string{
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentBankTransfer,
	PaymentPIX,
	PaymentCash,
	PaymentBoleto,
}

// Recurrence tags are informational; nothing is generated from them.
const (
	RecurrenceNone    = "None"
	RecurrenceWeekly  = "Weekly"
	RecurrenceMonthly = "Monthly"
	RecurrenceYearly  = "Yearly"
)

var Recurrences = []string{RecurrenceNone, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly}

var InvestmentTypes = []string{
	"Stocks",
	"Real Estate Funds",
	"Fixed Income",
	"Cryptocurrency",
	"Real Estate",
	"Equipment",
	"Other",
}

var DebtTypes = []string{
	"Vehicle Financing",
	"Real Estate Financing",
	"Working Capital Loan",
	"Investment Loan",
	"Other Debt",
}

// AllCategories returns income and expense categories without duplicates.
func AllCategories() []string {
	seen := make(map[string]struct{}, len(ExpenseCategories)+len(IncomeCategories))
	all := make([]string, 0, len(ExpenseCategories)+len(IncomeCategories))
	for _, c := range append(append([]string{}, ExpenseCategories...), IncomeCategories...) {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		all = append(all, c)
	}
	return all
}
