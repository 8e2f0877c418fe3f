// Package types provides type definitions for structured data used throughout the resume-normalizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CanonicalResume is the strict, schema-validated "Resume JSON" used at interchange boundaries.
// Its shape is defined by schemas/resume.schema.json.
type CanonicalResume struct {
	Metadata      ResumeMetadata        `json:"metadata"`
	Header        ResumeHeader          `json:"header"`
	Summary       string                `json:"summary,omitempty"`
	Experience    []CanonicalExperience `json:"experience"`
	Projects      []CanonicalProject    `json:"projects,omitempty"`
	Education     []CanonicalEducation  `json:"education"`
	Skills        *SkillSet             `json:"skills,omitempty"`
	Languages     []string              `json:"languages,omitempty"`
	Interests     []string              `json:"interests,omitempty"`
	OtherSections []OtherSection        `json:"otherSections,omitempty"`
}

// ResumeMetadata records how the resume was produced
type ResumeMetadata struct {
	Language       string   `json:"language"`
	PreservedOrder bool     `json:"preservedOrder"`
	Warnings       []string `json:"warnings,omitempty"`
}

// ResumeHeader holds the candidate's identity and contact details
type ResumeHeader struct {
	FullName string       `json:"fullName"`
	Email    string       `json:"email,omitempty"`
	Phone    string       `json:"phone,omitempty"`
	Location string       `json:"location,omitempty"`
	Links    *HeaderLinks `json:"links,omitempty"`
}

// HeaderLinks are optional profile URLs
type HeaderLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// CanonicalExperience is a single position held
type CanonicalExperience struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"startDate,omitempty"` // YYYY-MM
	EndDate   string   `json:"endDate,omitempty"`   // YYYY-MM or "Present"
	Bullets   []string `json:"bullets"`
}

// CanonicalProject is a side or portfolio project
type CanonicalProject struct {
	Name      string   `json:"name"`
	StartDate string   `json:"startDate,omitempty"`
	EndDate   string   `json:"endDate,omitempty"`
	Link      string   `json:"link,omitempty"`
	Bullets   []string `json:"bullets"`
}

// CanonicalEducation is a single school attended
type CanonicalEducation struct {
	School    string `json:"school"`
	Degree    string `json:"degree,omitempty"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// SkillSet groups skills by category. Skills without a known category belong in Other.
type SkillSet struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
	Other      []string `json:"other"`
}

// OtherSection is a free-form titled list (certifications, awards, publications...)
type OtherSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// PresentEndDate is the literal accepted in place of an end date for ongoing positions
const PresentEndDate = "Present"
