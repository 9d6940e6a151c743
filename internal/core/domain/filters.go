package domain

import "time"

// TransactionFilter narrows a transaction listing. Zero values match everything.
// From is inclusive, To is exclusive.
type TransactionFilter struct {
	Direction TransactionDirection
	Category  string
	From      *time.Time
	To        *time.Time
}

// AccountFilter narrows a payable/receivable listing. DueFrom is inclusive,
// DueTo is exclusive.
type AccountFilter struct {
	Direction AccountDirection
	Status    AccountStatus
	DueFrom   *time.Time
	DueTo     *time.Time
}
