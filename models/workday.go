package models

// WorkDay is one row of the WorkDays sheet. Hours may be fractional and, like
// any sheet cell, may arrive malformed; aggregates treat those as zero.
type WorkDay struct {
	ID        ID      `json:"id"`
	ProjectID ID      `json:"projectId"`
	Date      string  `json:"date"`
	Hours     Numeric `json:"hours"`
	Notes     string  `json:"notes"`
}
