package services

import (
	"sort"

	"hvacpro-backend/models"
)

// The functions in this file are the view-model layer: pure, synchronous,
// no I/O. Pages fetch collections through the sheet repositories and feed
// them here to get the derived numbers they display. All numeric input goes
// through the parse-or-zero policy of models.Numeric, so a junk cell skews
// a sum by zero instead of failing the whole page.

type DashboardStats struct {
	TotalCustomers   int     `json:"totalCustomers"`
	ActiveProjects   int     `json:"activeProjects"`
	PendingEstimates int     `json:"pendingEstimates"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// ComputeDashboardStats derives the four headline numbers of the dashboard.
// TotalRevenue sums every payment on record, not per project.
func ComputeDashboardStats(customers []models.Customer, projects []models.Project, payments []models.Payment) DashboardStats {
	stats := DashboardStats{TotalCustomers: len(customers)}
	for _, p := range projects {
		if p.IsActive() {
			stats.ActiveProjects++
		}
		if p.Status == models.StatusEstimate {
			stats.PendingEstimates++
		}
	}
	for _, pay := range payments {
		stats.TotalRevenue += pay.Amount.Float()
	}
	return stats
}

// RecentProjects returns the n most recently created projects, newest first.
// The sort is stable so equal timestamps keep their input order.
func RecentProjects(projects []models.Project, n int) []models.Project {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedTime().After(sorted[j].CreatedTime())
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

type PaymentSummary struct {
	TotalReceived      float64 `json:"totalReceived"`
	TotalContractValue float64 `json:"totalContractValue"`
	OutstandingBalance float64 `json:"outstandingBalance"`
}

// SummarizePayments rolls all payments against all contract values. The
// balance may come out negative (overpayment); it is reported, not clamped.
func SummarizePayments(projects []models.Project, payments []models.Payment) PaymentSummary {
	var s PaymentSummary
	for _, p := range payments {
		s.TotalReceived += p.Amount.Float()
	}
	for _, p := range projects {
		s.TotalContractValue += p.ContractAmount.Float()
	}
	s.OutstandingBalance = s.TotalContractValue - s.TotalReceived
	return s
}

type ProjectTotals struct {
	TotalHours       float64 `json:"totalHours"`
	TotalPayments    float64 `json:"totalPayments"`
	BalanceRemaining float64 `json:"balanceRemaining"`
}

// ComputeProjectTotals rolls one project's work days and payments.
func ComputeProjectTotals(p models.Project, workDays []models.WorkDay, payments []models.Payment) ProjectTotals {
	var t ProjectTotals
	for _, wd := range workDays {
		t.TotalHours += wd.Hours.Float()
	}
	for _, pay := range payments {
		t.TotalPayments += pay.Amount.Float()
	}
	t.BalanceRemaining = p.ContractAmount.Float() - t.TotalPayments
	return t
}

// ScheduleDay is one date's worth of work days on the schedule page.
type ScheduleDay struct {
	Date     string           `json:"date"`
	WorkDays []models.WorkDay `json:"workDays"`
	DayTotal float64          `json:"dayTotal"`
}

// GroupWorkDays sorts work days newest-date-first, then groups them by exact
// date string. Group order follows the sorted sequence; within a group the
// post-sort order is kept.
func GroupWorkDays(workDays []models.WorkDay) []ScheduleDay {
	sorted := make([]models.WorkDay, len(workDays))
	copy(sorted, workDays)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.ParseTime(sorted[i].Date).After(models.ParseTime(sorted[j].Date))
	})

	var days []ScheduleDay
	index := make(map[string]int)
	for _, wd := range sorted {
		i, ok := index[wd.Date]
		if !ok {
			i = len(days)
			index[wd.Date] = i
			days = append(days, ScheduleDay{Date: wd.Date})
		}
		days[i].WorkDays = append(days[i].WorkDays, wd)
		days[i].DayTotal += wd.Hours.Float()
	}
	return days
}

// TotalHours sums hours across all work days.
func TotalHours(workDays []models.WorkDay) float64 {
	var total float64
	for _, wd := range workDays {
		total += wd.Hours.Float()
	}
	return total
}

// SortPaymentsByDateDesc returns a copy of payments, newest first.
func SortPaymentsByDateDesc(payments []models.Payment) []models.Payment {
	sorted := make([]models.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.ParseTime(sorted[i].Date).After(models.ParseTime(sorted[j].Date))
	})
	return sorted
}
