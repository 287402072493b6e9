package domain

// ReconciliationHealth classifies the relationship between internally
// issued funds and actual custodial funds.
type ReconciliationHealth string

const (
	ReconciliationSafe     ReconciliationHealth = "safe"
	ReconciliationWarning  ReconciliationHealth = "warning"
	ReconciliationCritical ReconciliationHealth = "critical"
	ReconciliationDisabled ReconciliationHealth = "disabled"
)

// ReconciliationDisplay carries peso-formatted values for reporting.
type ReconciliationDisplay struct {
	BankBalance   string `json:"bank_balance"`
	SystemBalance string `json:"system_balance"`
	Discrepancy   string `json:"discrepancy"`
	Available     string `json:"available"`
	Buffer        string `json:"buffer"`
}

// ReconciliationStatus is the full advisory report. A critical health
// never raises an error by itself; the issuance path must consult it.
type ReconciliationStatus struct {
	Enabled       bool                 `json:"enabled"`
	Health        ReconciliationHealth `json:"status"`
	Message       string               `json:"message"`
	BankBalance   int64                `json:"bank_balance"`
	SystemBalance int64                `json:"system_balance"`
	Discrepancy   int64                `json:"discrepancy"`
	UsagePercent  float64              `json:"usage_percent"`
	Available     int64                `json:"available"`
	Buffer        int64                `json:"buffer"`
	Formatted     ReconciliationDisplay `json:"formatted"`
	Suppressed    bool                 `json:"suppressed"`
}
