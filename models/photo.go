package models

// Photo is one row of the Photos sheet. URL is either a data URI or a remote
// link; the sheet stores it verbatim.
type Photo struct {
	ID        ID     `json:"id"`
	ProjectID ID     `json:"projectId"`
	URL       string `json:"url"`
	Filename  string `json:"filename"`
}
