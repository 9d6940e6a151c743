package domain

// DefaultCurrencyCode is used when a company has not configured a currency.
const DefaultCurrencyCode = "BRL"

// CurrencyOrDefault returns code, or DefaultCurrencyCode when code is empty.
func CurrencyOrDefault(code string) string {
	if code == "" {
		return DefaultCurrencyCode
	}
	return code
}

// SupportedCurrencies lists the currencies a company ledger can be kept in.
var SupportedCurrencies = []string{"BRL", "USD", "EUR"}

// Company is the single business whose ledger is tracked. Every other entity
// belongs to exactly one company.
type Company struct {
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	AuditFields
}
