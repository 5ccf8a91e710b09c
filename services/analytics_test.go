package services

import (
	"encoding/json"
	"testing"

	"hvacpro-backend/models"
)

func num(t *testing.T, raw string) models.Numeric {
	t.Helper()
	var n models.Numeric
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		t.Fatalf("bad numeric literal %s: %v", raw, err)
	}
	return n
}

func TestComputeDashboardStats(t *testing.T) {
	customers := []models.Customer{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	projects := []models.Project{
		{Status: models.StatusEstimate},
		{Status: models.StatusApproved},
		{Status: models.StatusInProgress},
		{Status: models.StatusCompleted},
		{Status: models.StatusCancelled},
		{Status: models.StatusEstimate},
	}
	payments := []models.Payment{
		{Amount: num(t, `100.50`)},
		{Amount: num(t, `"200"`)},
		{Amount: num(t, `"oops"`)},
	}

	stats := ComputeDashboardStats(customers, projects, payments)

	if stats.TotalCustomers != 3 {
		t.Errorf("TotalCustomers = %d, want 3", stats.TotalCustomers)
	}
	if stats.ActiveProjects != 2 {
		t.Errorf("ActiveProjects = %d, want 2", stats.ActiveProjects)
	}
	if stats.PendingEstimates != 2 {
		t.Errorf("PendingEstimates = %d, want 2", stats.PendingEstimates)
	}
	if stats.TotalRevenue != 300.50 {
		t.Errorf("TotalRevenue = %v, want 300.50", stats.TotalRevenue)
	}
}

func TestSummarizePayments_MalformedAmountsContributeZero(t *testing.T) {
	payments := []models.Payment{
		{Amount: num(t, `1000`)},
		{Amount: num(t, `"not a number"`)},
		{Amount: num(t, `250.25`)},
	}
	projects := []models.Project{
		{ContractAmount: num(t, `2000`)},
		{ContractAmount: num(t, `""`)},
	}

	s := SummarizePayments(projects, payments)

	if s.TotalReceived != 1250.25 {
		t.Errorf("TotalReceived = %v, want 1250.25", s.TotalReceived)
	}
	if s.TotalContractValue != 2000 {
		t.Errorf("TotalContractValue = %v, want 2000", s.TotalContractValue)
	}
	if s.OutstandingBalance != 749.75 {
		t.Errorf("OutstandingBalance = %v, want 749.75", s.OutstandingBalance)
	}
}

func TestSummarizePayments_NegativeBalanceNotClamped(t *testing.T) {
	payments := []models.Payment{{Amount: num(t, `5000`)}}
	projects := []models.Project{{ContractAmount: num(t, `3000`)}}

	s := SummarizePayments(projects, payments)

	if s.OutstandingBalance != -2000 {
		t.Errorf("OutstandingBalance = %v, want -2000", s.OutstandingBalance)
	}
}

func TestComputeProjectTotals(t *testing.T) {
	project := models.Project{ContractAmount: num(t, `10000`)}
	workDays := []models.WorkDay{
		{Hours: num(t, `8`)},
		{Hours: num(t, `4.5`)},
		{Hours: num(t, `"junk"`)},
	}
	payments := []models.Payment{
		{Amount: num(t, `2500`)},
		{Amount: num(t, `1500`)},
	}

	totals := ComputeProjectTotals(project, workDays, payments)

	if totals.TotalHours != 12.5 {
		t.Errorf("TotalHours = %v, want 12.5", totals.TotalHours)
	}
	if totals.TotalPayments != 4000 {
		t.Errorf("TotalPayments = %v, want 4000", totals.TotalPayments)
	}
	if totals.BalanceRemaining != 6000 {
		t.Errorf("BalanceRemaining = %v, want 6000", totals.BalanceRemaining)
	}
}

func TestGroupWorkDays(t *testing.T) {
	workDays := []models.WorkDay{
		{ID: "w1", Date: "2025-01-05", Hours: num(t, `3`)},
		{ID: "w2", Date: "2025-01-05", Hours: num(t, `"bad"`)},
		{ID: "w3", Date: "2025-01-06", Hours: num(t, `4`)},
	}

	days := GroupWorkDays(workDays)

	if len(days) != 2 {
		t.Fatalf("got %d groups, want 2", len(days))
	}
	// Newest date first
	if days[0].Date != "2025-01-06" || days[1].Date != "2025-01-05" {
		t.Fatalf("group order = [%s, %s], want [2025-01-06, 2025-01-05]", days[0].Date, days[1].Date)
	}
	if days[0].DayTotal != 4 {
		t.Errorf("dayTotal(2025-01-06) = %v, want 4", days[0].DayTotal)
	}
	if days[1].DayTotal != 3 {
		t.Errorf("dayTotal(2025-01-05) = %v, want 3 (invalid hours contribute 0)", days[1].DayTotal)
	}
	if len(days[1].WorkDays) != 2 {
		t.Errorf("group 2025-01-05 has %d rows, want 2", len(days[1].WorkDays))
	}
	if days[1].WorkDays[0].ID != "w1" || days[1].WorkDays[1].ID != "w2" {
		t.Errorf("rows within a group must keep their order")
	}
}

func TestRecentProjects_FiveMostRecentDescending(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", CreatedAt: "2025-01-01"},
		{ID: "p2", CreatedAt: "2025-03-01"},
		{ID: "p3", CreatedAt: "2025-02-01"},
		{ID: "p4", CreatedAt: "2025-07-01"},
		{ID: "p5", CreatedAt: "2025-05-01"},
		{ID: "p6", CreatedAt: "2025-04-01"},
		{ID: "p7", CreatedAt: "2025-06-01"},
	}

	recent := RecentProjects(projects, 5)

	want := []models.ID{"p4", "p7", "p5", "p6", "p2"}
	if len(recent) != len(want) {
		t.Fatalf("got %d projects, want %d", len(recent), len(want))
	}
	for i, id := range want {
		if recent[i].ID != id {
			t.Errorf("recent[%d] = %s, want %s", i, recent[i].ID, id)
		}
	}
}

func TestRecentProjects_StableOnEqualTimestamps(t *testing.T) {
	projects := []models.Project{
		{ID: "a", CreatedAt: "2025-01-01"},
		{ID: "b", CreatedAt: "2025-01-01"},
		{ID: "c", CreatedAt: "2025-01-01"},
	}

	recent := RecentProjects(projects, 5)

	for i, id := range []models.ID{"a", "b", "c"} {
		if recent[i].ID != id {
			t.Errorf("ties must keep input order: recent[%d] = %s, want %s", i, recent[i].ID, id)
		}
	}
}

func TestRecentProjects_DoesNotMutateInput(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", CreatedAt: "2025-01-01"},
		{ID: "p2", CreatedAt: "2025-02-01"},
	}

	RecentProjects(projects, 1)

	if projects[0].ID != "p1" {
		t.Error("input slice was reordered")
	}
}

func TestTotalHours(t *testing.T) {
	workDays := []models.WorkDay{
		{Hours: num(t, `3`)},
		{Hours: num(t, `"bad"`)},
		{Hours: num(t, `4`)},
	}
	if got := TotalHours(workDays); got != 7 {
		t.Errorf("TotalHours = %v, want 7", got)
	}
}

func TestSortPaymentsByDateDesc(t *testing.T) {
	payments := []models.Payment{
		{ID: "old", Date: "2025-01-01"},
		{ID: "new", Date: "2025-06-01"},
		{ID: "mid", Date: "2025-03-01"},
	}

	sorted := SortPaymentsByDateDesc(payments)

	want := []models.ID{"new", "mid", "old"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].ID, id)
		}
	}
	if payments[0].ID != "old" {
		t.Error("input slice was reordered")
	}
}
