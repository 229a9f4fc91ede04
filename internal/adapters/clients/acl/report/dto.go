// Package report implements the anti-corruption layer translators for the
// renderer's account report document.
package report

// AccountReportDTO matches the renderer's account-report request schema.
// Timestamps are RFC 3339 strings in UTC.
type AccountReportDTO struct {
	Locale      string       `json:"locale"`
	GeneratedAt string       `json:"generated_at"`
	Account     AccountDTO   `json:"account"`
	Summary     SummaryDTO   `json:"summary"`
	Leads       []ContactDTO `json:"leads"`
	Prospects   []ContactDTO `json:"prospects"`
	OpenTodos   []TodoDTO    `json:"open_todos"`
}

// AccountDTO is the report header.
type AccountDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	OwnerID       string   `json:"owner_id,omitempty"`
	Collaborators []string `json:"collaborators"`
}

// SummaryDTO holds the counters printed on the cover page.
type SummaryDTO struct {
	Leads     int64 `json:"leads"`
	Prospects int64 `json:"prospects"`
	OpenTodos int64 `json:"open_todos"`
	Overdue   int64 `json:"overdue"`
}

// ContactDTO is one row of the leads or prospects table. The renderer has a
// single contact shape for both.
type ContactDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Email       string `json:"email,omitempty"`
	ProfileURL  string `json:"profile_url,omitempty"`
	Personality string `json:"personality,omitempty"`
	Status      string `json:"status,omitempty"`
}

// TodoDTO is one row of the open todo table.
type TodoDTO struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Scheduled string `json:"scheduled,omitempty"`
	Channel   string `json:"channel,omitempty"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status"`
	Assignee  string `json:"assignee,omitempty"`
	Note      string `json:"note,omitempty"`
	Link      string `json:"link,omitempty"`
	Overdue   bool   `json:"overdue"`
}
