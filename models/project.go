package models

import "time"

// Project statuses form a closed set. Unknown values coming back from the
// sheet are stored as-is and displayed under the estimate category.
const (
	StatusEstimate   = "estimate"
	StatusApproved   = "approved"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

var ProjectStatuses = []string{
	StatusEstimate,
	StatusApproved,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// Project is one row of the Projects sheet. Equipment, work days, payments
// and photos hang off it by projectId.
type Project struct {
	ID             ID      `json:"id"`
	CustomerID     ID      `json:"customerId"`
	ProjectName    string  `json:"projectName"`
	Contractor     string  `json:"contractor"`
	Status         string  `json:"status"`
	NatureOfJob    string  `json:"natureOfJob"`
	EstimateAmount Numeric `json:"estimateAmount"`
	ContractAmount Numeric `json:"contractAmount"`
	Notes          string  `json:"notes"`
	CreatedAt      string  `json:"createdAt"`
}

// IsActive reports whether the project counts toward the active total.
func (p Project) IsActive() bool {
	return p.Status == StatusApproved || p.Status == StatusInProgress
}

func (p Project) CreatedTime() time.Time {
	return ParseTime(p.CreatedAt)
}

// DisplayStatus maps unrecognized statuses to the default category without
// rewriting the stored value.
func (p Project) DisplayStatus() string {
	for _, s := range ProjectStatuses {
		if p.Status == s {
			return s
		}
	}
	return StatusEstimate
}
