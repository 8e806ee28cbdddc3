package models

// LeadStatus is the qualification stage of a lead. Every lead starts at
// "new"; the later stages exist in the model but no current operation
// moves a lead into them (leads are added and deleted, not worked).
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
)

type Lead struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Company string     `json:"company"`
	Value   float64    `json:"value"` // estimated deal value
	Source  string     `json:"source"`
	Status  LeadStatus `json:"status"`
}
