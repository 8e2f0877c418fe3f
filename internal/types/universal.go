// Package types provides type definitions for structured data used throughout the resume-normalizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// UniversalResumeData is the denormalized, editor-friendly resume projection.
// Every list is non-nil and every string is present (possibly empty), so consumers
// can read any field without checking for absence. Experience and education carry
// both legacy and canonical field names holding the same values.
type UniversalResumeData struct {
	Metadata      ResumeMetadata        `json:"metadata"`
	PersonalInfo  PersonalInfo          `json:"personalInfo"`
	Summary       string                `json:"summary"`
	Experience    []UniversalExperience `json:"experience"`
	Education     []UniversalEducation  `json:"education"`
	Projects      []UniversalProject    `json:"projects"`
	Skills        SkillSet              `json:"skills"`
	Languages     []LanguageSkill       `json:"languages"`
	Interests     []string              `json:"interests"`
	OtherSections []OtherSection        `json:"otherSections"`
}

// PersonalInfo holds contact details
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
}

// UniversalExperience is an experience entry. Position and Title are always equal,
// as are Achievements and Bullets.
type UniversalExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Bullets      []string `json:"bullets"`
}

// UniversalEducation is an education entry. Institution and School are always equal.
// Dates is a single display string such as "2015–2019".
type UniversalEducation struct {
	Institution string `json:"institution"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	Dates       string `json:"dates"`
	GPA         string `json:"gpa"`
}

// UniversalProject is a project entry
type UniversalProject struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Dates       string   `json:"dates"`
	Link        string   `json:"link"`
	Bullets     []string `json:"bullets"`
}

// LanguageSkill is a spoken language. Proficiency is empty when the source did not state one.
type LanguageSkill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}
