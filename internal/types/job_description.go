// Package types provides type definitions for structured data used throughout the resume-normalizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobDescriptionRecord is a best-effort segmentation of a job posting.
// No field is guaranteed; consumers must treat every field as optional.
type JobDescriptionRecord struct {
	Title            string       `json:"title,omitempty"`
	Company          string       `json:"company,omitempty"`
	Location         string       `json:"location,omitempty"`
	EmploymentType   string       `json:"employmentType,omitempty"` // full-time, part-time, contract, internship, temporary
	WorkMode         string       `json:"workMode,omitempty"`       // remote, hybrid, on-site
	Seniority        string       `json:"seniority,omitempty"`      // intern, junior, mid, senior, staff, principal, lead
	Summary          string       `json:"summary,omitempty"`
	AboutCompany     string       `json:"aboutCompany,omitempty"`
	Responsibilities []string     `json:"responsibilities,omitempty"`
	Requirements     []string     `json:"requirements,omitempty"`
	NiceToHave       []string     `json:"niceToHave,omitempty"`
	Benefits         []string     `json:"benefits,omitempty"`
	Skills           []string     `json:"skills,omitempty"`
	Sections         []JobSection `json:"sections,omitempty"`
}

// JobSection is a headed block of the posting in document order
type JobSection struct {
	Heading string   `json:"heading"`
	Kind    string   `json:"kind"` // classified section kind, or "other"
	Lines   []string `json:"lines"`
}

// IsEmpty reports whether the record carries no extracted data
func (r *JobDescriptionRecord) IsEmpty() bool {
	return r.Title == "" && r.Company == "" && r.Location == "" &&
		r.EmploymentType == "" && r.WorkMode == "" && r.Seniority == "" &&
		r.Summary == "" && r.AboutCompany == "" &&
		len(r.Responsibilities) == 0 && len(r.Requirements) == 0 &&
		len(r.NiceToHave) == 0 && len(r.Benefits) == 0 &&
		len(r.Skills) == 0 && len(r.Sections) == 0
}
