package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hvacpro-backend/config"
	"hvacpro-backend/sheets"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeSheets serves canned getAll responses per sheet name.
func fakeSheets(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sheet := r.URL.Query().Get("sheet")
		body, ok := responses[sheet]
		if !ok {
			fmt.Fprint(w, `{"success":false,"error":"unknown sheet"}`)
			return
		}
		fmt.Fprint(w, body)
	}))
}

func perform(handler gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler(c)
	return w
}

func TestDashboardOverview(t *testing.T) {
	srv := fakeSheets(t, map[string]string{
		"Customers": `{"success":true,"data":[{"id":"c1"},{"id":"c2"}]}`,
		"Projects": `{"success":true,"data":[
			{"id":"p1","customerId":"c1","projectName":"Furnace swap","status":"approved","createdAt":"2025-03-01"},
			{"id":"p2","customerId":"c2","projectName":"AC install","status":"estimate","createdAt":"2025-04-01"},
			{"id":"p3","customerId":"c1","projectName":"Duct repair","status":"mystery","createdAt":"2025-02-01"}
		]}`,
		"Payments": `{"success":true,"data":[
			{"id":"m1","projectId":"p1","amount":1000},
			{"id":"m2","projectId":"p1","amount":"250.50"},
			{"id":"m3","projectId":"p2","amount":"bad"}
		]}`,
	})
	defer srv.Close()

	client := sheets.NewClient(config.Config{SheetsURL: srv.URL}, zap.NewNop())
	ctl := NewDashboardController(
		sheets.NewCustomerRepo(client),
		sheets.NewProjectRepo(client),
		sheets.NewPaymentRepo(client),
		zap.NewNop(),
	)

	w := perform(ctl.Overview, httptest.NewRequest("GET", "/api/dashboard", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Stats struct {
			TotalCustomers   int     `json:"totalCustomers"`
			ActiveProjects   int     `json:"activeProjects"`
			PendingEstimates int     `json:"pendingEstimates"`
			TotalRevenue     float64 `json:"totalRevenue"`
		} `json:"stats"`
		RecentProjects []struct {
			ID            string `json:"id"`
			DisplayStatus string `json:"displayStatus"`
		} `json:"recentProjects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response JSON: %v", err)
	}

	if resp.Stats.TotalCustomers != 2 {
		t.Errorf("totalCustomers = %d, want 2", resp.Stats.TotalCustomers)
	}
	if resp.Stats.ActiveProjects != 1 {
		t.Errorf("activeProjects = %d, want 1", resp.Stats.ActiveProjects)
	}
	if resp.Stats.PendingEstimates != 1 {
		t.Errorf("pendingEstimates = %d, want 1", resp.Stats.PendingEstimates)
	}
	if resp.Stats.TotalRevenue != 1250.50 {
		t.Errorf("totalRevenue = %v, want 1250.50 (malformed amount contributes 0)", resp.Stats.TotalRevenue)
	}

	if len(resp.RecentProjects) != 3 {
		t.Fatalf("recentProjects = %d rows, want 3", len(resp.RecentProjects))
	}
	if resp.RecentProjects[0].ID != "p2" || resp.RecentProjects[2].ID != "p3" {
		t.Errorf("recent order = [%s ... %s], want newest first", resp.RecentProjects[0].ID, resp.RecentProjects[2].ID)
	}
	if resp.RecentProjects[2].DisplayStatus != "estimate" {
		t.Errorf("unknown status displays as %q, want estimate", resp.RecentProjects[2].DisplayStatus)
	}
}

func TestDashboardOverview_FailsFastWhenOneLoadFails(t *testing.T) {
	srv := fakeSheets(t, map[string]string{
		"Customers": `{"success":true,"data":[]}`,
		"Projects":  `{"success":true,"data":[]}`,
		"Payments":  `{"success":false,"error":"Payments sheet is locked"}`,
	})
	defer srv.Close()

	client := sheets.NewClient(config.Config{SheetsURL: srv.URL}, zap.NewNop())
	ctl := NewDashboardController(
		sheets.NewCustomerRepo(client),
		sheets.NewProjectRepo(client),
		sheets.NewPaymentRepo(client),
		zap.NewNop(),
	)

	w := perform(ctl.Overview, httptest.NewRequest("GET", "/api/dashboard", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["error"] != "Payments sheet is locked" {
		t.Errorf("error = %q, want the remote message surfaced verbatim", resp["error"])
	}
}

func TestDashboardOverview_NotConnected(t *testing.T) {
	client := sheets.NewClient(config.Config{}, zap.NewNop())
	ctl := NewDashboardController(
		sheets.NewCustomerRepo(client),
		sheets.NewProjectRepo(client),
		sheets.NewPaymentRepo(client),
		zap.NewNop(),
	)

	w := perform(ctl.Overview, httptest.NewRequest("GET", "/api/dashboard", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}
