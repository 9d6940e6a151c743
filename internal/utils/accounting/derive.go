package accounting

import (
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
)

// DefaultUpcomingLimit is how many upcoming accounts Derive returns by default.
const DefaultUpcomingLimit = 5

// DeriveOptions carries the ambient inputs of a recompute.
type DeriveOptions struct {
	Now      time.Time
	Location *time.Location
	// Period restricts the period totals. Defaults to the month containing Now.
	Period        *domain.Period
	CurrencyCode  string
	UpcomingLimit int
	TrendMonths   int
}

func (o DeriveOptions) withDefaults() DeriveOptions {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	if o.Period == nil {
		p := MonthPeriod(o.Now, o.Location)
		o.Period = &p
	}
	if o.CurrencyCode == "" {
		o.CurrencyCode = domain.DefaultCurrencyCode
	}
	if o.UpcomingLimit == 0 {
		o.UpcomingLimit = DefaultUpcomingLimit
	}
	if o.TrendMonths == 0 {
		o.TrendMonths = DefaultTrendMonths
	}
	return o
}

// Derive recomputes every aggregate from one snapshot. The snapshot is not
// modified and nothing is cached between calls. Money amounts are rounded to
// the currency only after every aggregate has been computed.
func Derive(snap domain.Snapshot, opts DeriveOptions) domain.DerivedState {
	opts = opts.withDefaults()

	valued := ValueInvestments(snap.Investments)
	amortized := AmortizeDebts(snap.Debts, snap.Transactions)
	summary := ComposeNetWorth(CashBalance(snap.Transactions), valued, amortized)

	state := domain.DerivedState{
		Summary:            summary,
		Period:             PeriodTotals(snap.Transactions, *opts.Period),
		CashFlowTrend:      MonthlyCashFlow(snap.Transactions, opts.Now, opts.Location, opts.TrendMonths),
		ExpensesByCategory: ExpensesByCategory(snap.Transactions),
		Portfolio:          SummarizePortfolio(valued),
		Investments:        valued,
		Debts:              amortized,
		Counterparties:     RollupCounterparties(snap.Transactions),
		Achievements:       EvaluateAchievements(snap.Transactions, snap.Accounts, opts.Now, opts.Location),
		AccountTotals:      PendingAccountTotals(snap.Accounts),
		UpcomingAccounts:   UpcomingAccounts(snap.Accounts, opts.Now, opts.Location, opts.UpcomingLimit),
	}
	return RoundDerivedState(state, opts.CurrencyCode)
}
