package models

// Equipment is one row of the Equipment sheet: a unit installed or serviced
// on a project.
type Equipment struct {
	ID           ID     `json:"id"`
	ProjectID    ID     `json:"projectId"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	SerialNumber string `json:"serialNumber"`
}
