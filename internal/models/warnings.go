package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = report parsing, W2xxx = pricing.
type WarningCode string

const (
	WarnNoDividendData WarningCode = "W1001" // no dividend section recognized in the uploaded report
	WarnQuoteNotFound  WarningCode = "W2001" // symbol not found on any venue
	WarnQuoteStale     WarningCode = "W2002" // quote served from the persistent cache past its soft TTL
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
