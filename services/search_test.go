package services

import (
	"testing"

	"hvacpro-backend/models"
)

var searchCustomers = []models.Customer{
	{ID: "c1", FirstName: "Maria", LastName: "Santos", Email: "maria@example.com", Phone: "4084253800", City: "San Jose"},
	{ID: "c2", FirstName: "Ed", LastName: "Kowalski", Email: "ed@edcohvac.com", Phone: "6505551234", City: "Palo Alto"},
}

func TestFilterCustomers(t *testing.T) {
	cases := []struct {
		term string
		want []models.ID
	}{
		{"", []models.ID{"c1", "c2"}},
		{"maria", []models.ID{"c1"}},
		{"SANTOS", []models.ID{"c1"}},
		{"edcohvac", []models.ID{"c2"}},
		{"408425", []models.ID{"c1"}},
		{"palo", []models.ID{"c2"}},
		{"nobody", nil},
	}

	for _, tc := range cases {
		got := FilterCustomers(searchCustomers, tc.term)
		if len(got) != len(tc.want) {
			t.Errorf("FilterCustomers(%q) returned %d rows, want %d", tc.term, len(got), len(tc.want))
			continue
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Errorf("FilterCustomers(%q)[%d] = %s, want %s", tc.term, i, got[i].ID, id)
			}
		}
	}
}

func TestFilterProjects(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", CustomerID: "c1", ProjectName: "Furnace replacement", Contractor: "EDCO", Status: models.StatusApproved, CreatedAt: "2025-02-01"},
		{ID: "p2", CustomerID: "c2", ProjectName: "AC install", Contractor: "Subbed out", Status: models.StatusEstimate, CreatedAt: "2024-11-15"},
	}
	ix := NewNameIndex(projects, searchCustomers)

	cases := []struct {
		term, status, year string
		want               []models.ID
	}{
		{"", "", "", []models.ID{"p1", "p2"}},
		{"furnace", "", "", []models.ID{"p1"}},
		{"kowalski", "", "", []models.ID{"p2"}}, // matched via customer name
		{"", models.StatusEstimate, "", []models.ID{"p2"}},
		{"", "", "2025", []models.ID{"p1"}},
		{"install", models.StatusApproved, "", nil},
	}

	for _, tc := range cases {
		got := FilterProjects(projects, ix, tc.term, tc.status, tc.year)
		if len(got) != len(tc.want) {
			t.Errorf("FilterProjects(%q,%q,%q) returned %d rows, want %d", tc.term, tc.status, tc.year, len(got), len(tc.want))
			continue
		}
		for i, id := range tc.want {
			if got[i].ID != id {
				t.Errorf("FilterProjects(%q,%q,%q)[%d] = %s, want %s", tc.term, tc.status, tc.year, i, got[i].ID, id)
			}
		}
	}
}

func TestNameIndexFallbacks(t *testing.T) {
	ix := NewNameIndex(nil, nil)

	if got := ix.CustomerName("missing"); got != "Unknown" {
		t.Errorf("CustomerName = %q, want Unknown", got)
	}
	if got := ix.ProjectName("missing"); got != "Unknown Project" {
		t.Errorf("ProjectName = %q, want Unknown Project", got)
	}
	if got := ix.CustomerNameByProject("missing"); got != "Unknown" {
		t.Errorf("CustomerNameByProject = %q, want Unknown", got)
	}
}

func TestFilterPayments(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", CustomerID: "c1", ProjectName: "Furnace replacement"},
	}
	ix := NewNameIndex(projects, searchCustomers)
	payments := []models.Payment{
		{ID: "m1", ProjectID: "p1", Method: models.MethodZelle, Note: "deposit"},
		{ID: "m2", ProjectID: "p1", Method: models.MethodCheck, Note: "final"},
	}

	if got := FilterPayments(payments, ix, "zelle"); len(got) != 1 || got[0].ID != "m1" {
		t.Errorf("FilterPayments(zelle) = %v", got)
	}
	if got := FilterPayments(payments, ix, "furnace"); len(got) != 2 {
		t.Errorf("FilterPayments(furnace) matched %d, want 2 (project name)", len(got))
	}
}

func TestFilterWorkDays(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", CustomerID: "c2", ProjectName: "AC install"},
	}
	ix := NewNameIndex(projects, searchCustomers)
	workDays := []models.WorkDay{
		{ID: "w1", ProjectID: "p1", Notes: "rough-in day"},
		{ID: "w2", ProjectID: "p1", Notes: "final inspection"},
	}

	if got := FilterWorkDays(workDays, ix, "rough"); len(got) != 1 || got[0].ID != "w1" {
		t.Errorf("FilterWorkDays(rough) = %v", got)
	}
	if got := FilterWorkDays(workDays, ix, "ed kowalski"); len(got) != 2 {
		t.Errorf("FilterWorkDays(customer name) matched %d, want 2", len(got))
	}
}
