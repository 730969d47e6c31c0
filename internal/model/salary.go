package model

// SalaryCurrency is the ISO 4217 code of a salary range.
type SalaryCurrency string

const (
	CurrencyUSD SalaryCurrency = "USD"
	CurrencyEUR SalaryCurrency = "EUR"
	CurrencyARS SalaryCurrency = "ARS"
	CurrencyCLP SalaryCurrency = "CLP"
	CurrencyMXN SalaryCurrency = "MXN"
	CurrencyBRL SalaryCurrency = "BRL"
	CurrencyCOP SalaryCurrency = "COP"
	CurrencyPEN SalaryCurrency = "PEN"
	CurrencyUYU SalaryCurrency = "UYU"
)

// SalaryPeriod is the time unit a salary amount refers to.
type SalaryPeriod string

const (
	SalaryHourly  SalaryPeriod = "HOURLY"
	SalaryMonthly SalaryPeriod = "MONTHLY"
	SalaryYearly  SalaryPeriod = "YEARLY"
)

// SalaryType tells whether an amount is before or after taxes.
type SalaryType string

const (
	SalaryGross SalaryType = "GROSS"
	SalaryNet   SalaryType = "NET"
)

// Validator tags for request DTOs, kept next to the enums they mirror.
const (
	SalaryCurrencyOneOf = "USD EUR ARS CLP MXN BRL COP PEN UYU"
	SalaryPeriodOneOf   = "HOURLY MONTHLY YEARLY"
	SalaryTypeOneOf     = "GROSS NET"
)
