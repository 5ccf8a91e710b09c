package sheets

import (
	"context"
	"encoding/json"

	"hvacpro-backend/models"
)

// Sheet names recognized by the remote store.
const (
	SheetCustomers = "Customers"
	SheetProjects  = "Projects"
	SheetEquipment = "Equipment"
	SheetWorkDays  = "WorkDays"
	SheetPayments  = "Payments"
	SheetPhotos    = "Photos"
	SheetUsers     = "Users"
)

// Actions recognized by the remote store.
const (
	actionLogin        = "login"
	actionGetAll       = "getAll"
	actionGetByID      = "getById"
	actionGetByProject = "getByProject"
	actionCreate       = "create"
	actionUpdate       = "update"
	actionDelete       = "delete"
)

// postRequest is the body shape of every mutating call.
type postRequest struct {
	Action string    `json:"action"`
	Sheet  string    `json:"sheet"`
	ID     models.ID `json:"id,omitempty"`
	Record any       `json:"record,omitempty"`
}

// decode validates the remote JSON shape into a typed value. A shape
// mismatch is a transport-class failure: the envelope arrived, the payload
// inside it did not hold what the sheet contract promises.
func decode[T any](op string, raw json.RawMessage) (T, error) {
	var v T
	if len(raw) == 0 || string(raw) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, &TransportError{Op: "decode " + op, Err: err}
	}
	return v, nil
}

func getAll[T any](ctx context.Context, c *Client, sheet string) ([]T, error) {
	raw, err := c.Get(ctx, map[string]string{"action": actionGetAll, "sheet": sheet})
	if err != nil {
		return nil, err
	}
	return decode[[]T](sheet, raw)
}

func getByProject[T any](ctx context.Context, c *Client, sheet string, projectID models.ID) ([]T, error) {
	raw, err := c.Get(ctx, map[string]string{
		"action":    actionGetByProject,
		"sheet":     sheet,
		"projectId": projectID.String(),
	})
	if err != nil {
		return nil, err
	}
	return decode[[]T](sheet, raw)
}

func getByID[T any](ctx context.Context, c *Client, sheet string, id models.ID) (T, error) {
	raw, err := c.Get(ctx, map[string]string{
		"action": actionGetByID,
		"sheet":  sheet,
		"id":     id.String(),
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](sheet, raw)
}

// create sends the record and returns it as stored, id included. The gateway
// performs no field transformation in either direction.
func create[T any](ctx context.Context, c *Client, sheet string, record T) (T, error) {
	raw, err := c.Post(ctx, postRequest{Action: actionCreate, Sheet: sheet, Record: record})
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](sheet, raw)
}

// update is a full-record replace, not a merge. Callers send every field.
func update[T any](ctx context.Context, c *Client, sheet string, id models.ID, record T) (T, error) {
	raw, err := c.Post(ctx, postRequest{Action: actionUpdate, Sheet: sheet, ID: id, Record: record})
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](sheet, raw)
}

// deleteRecord removes one row. Deleting an id that is already gone is
// remote-defined: it may no-op or fail, and callers tolerate both.
func deleteRecord(ctx context.Context, c *Client, sheet string, id models.ID) error {
	_, err := c.Post(ctx, postRequest{Action: actionDelete, Sheet: sheet, ID: id})
	return err
}
