package services

import (
	"strconv"
	"strings"

	"hvacpro-backend/models"
)

// NameIndex resolves the display names the list pages search over: a work
// day or payment row matches when the search term hits its project's name or
// that project's customer.
type NameIndex struct {
	projects  map[models.ID]models.Project
	customers map[models.ID]models.Customer
}

func NewNameIndex(projects []models.Project, customers []models.Customer) *NameIndex {
	ix := &NameIndex{
		projects:  make(map[models.ID]models.Project, len(projects)),
		customers: make(map[models.ID]models.Customer, len(customers)),
	}
	for _, p := range projects {
		ix.projects[p.ID] = p
	}
	for _, c := range customers {
		ix.customers[c.ID] = c
	}
	return ix
}

func (ix *NameIndex) CustomerName(id models.ID) string {
	if c, ok := ix.customers[id]; ok {
		return c.FullName()
	}
	return "Unknown"
}

func (ix *NameIndex) ProjectName(id models.ID) string {
	if p, ok := ix.projects[id]; ok {
		return p.ProjectName
	}
	return "Unknown Project"
}

func (ix *NameIndex) CustomerNameByProject(projectID models.ID) string {
	p, ok := ix.projects[projectID]
	if !ok {
		return "Unknown"
	}
	return ix.CustomerName(p.CustomerID)
}

// FilterCustomers keeps customers whose first name, last name, email or city
// contains the term case-insensitively, or whose phone contains it verbatim.
func FilterCustomers(customers []models.Customer, term string) []models.Customer {
	if term == "" {
		return customers
	}
	lower := strings.ToLower(term)
	var out []models.Customer
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.FirstName), lower) ||
			strings.Contains(strings.ToLower(c.LastName), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(c.Phone, term) ||
			strings.Contains(strings.ToLower(c.City), lower) {
			out = append(out, c)
		}
	}
	return out
}

// FilterProjects applies the search term plus the optional status and
// created-year filters the projects page offers.
func FilterProjects(projects []models.Project, ix *NameIndex, term, status, year string) []models.Project {
	lower := strings.ToLower(term)
	var out []models.Project
	for _, p := range projects {
		if term != "" {
			matches := strings.Contains(strings.ToLower(p.ProjectName), lower) ||
				strings.Contains(strings.ToLower(p.Contractor), lower) ||
				strings.Contains(strings.ToLower(ix.CustomerName(p.CustomerID)), lower)
			if !matches {
				continue
			}
		}
		if status != "" && p.Status != status {
			continue
		}
		if year != "" {
			created := p.CreatedTime()
			if created.IsZero() || strconv.Itoa(created.Year()) != year {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// FilterWorkDays keeps rows matching the term against project name, customer
// name, or the row's notes.
func FilterWorkDays(workDays []models.WorkDay, ix *NameIndex, term string) []models.WorkDay {
	if term == "" {
		return workDays
	}
	lower := strings.ToLower(term)
	var out []models.WorkDay
	for _, wd := range workDays {
		if strings.Contains(strings.ToLower(ix.ProjectName(wd.ProjectID)), lower) ||
			strings.Contains(strings.ToLower(ix.CustomerNameByProject(wd.ProjectID)), lower) ||
			strings.Contains(strings.ToLower(wd.Notes), lower) {
			out = append(out, wd)
		}
	}
	return out
}

// FilterPayments keeps rows matching the term against project name, customer
// name, payment method, or note.
func FilterPayments(payments []models.Payment, ix *NameIndex, term string) []models.Payment {
	if term == "" {
		return payments
	}
	lower := strings.ToLower(term)
	var out []models.Payment
	for _, p := range payments {
		if strings.Contains(strings.ToLower(ix.ProjectName(p.ProjectID)), lower) ||
			strings.Contains(strings.ToLower(ix.CustomerNameByProject(p.ProjectID)), lower) ||
			strings.Contains(strings.ToLower(p.Method), lower) ||
			strings.Contains(strings.ToLower(p.Note), lower) {
			out = append(out, p)
		}
	}
	return out
}
