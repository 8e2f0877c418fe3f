package mapping

// Alias tables list the field names each value may appear under, in priority order.
// Canonical names come first so an explicit canonical field always wins over an alternate spelling.

// Containers that may hold personal info, searched before the top level
var personalContainerKeys = []string{"header", "personalInfo", "personal_info", "contact", "contactInfo", "basics"}

// Personal info
var (
	fullNameKeys  = []string{"fullName", "full_name", "name", "candidateName", "candidate_name"}
	firstNameKeys = []string{"firstName", "first_name", "givenName"}
	lastNameKeys  = []string{"lastName", "last_name", "familyName", "surname"}
	emailKeys     = []string{"email", "emailAddress", "email_address", "mail"}
	phoneKeys     = []string{"phone", "phoneNumber", "phone_number", "mobile", "telephone", "tel"}
	locationKeys  = []string{"location", "address", "city", "residence"}
	linkedInKeys  = []string{"linkedin", "linkedIn", "linkedinUrl", "linkedin_url", "linkedInUrl"}
	gitHubKeys    = []string{"github", "gitHub", "githubUrl", "github_url", "gitHubUrl"}
	portfolioKeys = []string{"portfolio", "website", "portfolioUrl", "portfolio_url", "homepage", "url", "site"}
	linksKeys     = []string{"links", "profiles", "socials", "social"}
	summaryKeys   = []string{"summary", "professionalSummary", "professional_summary", "profile", "objective", "about"}
)

// Location sub-fields of structured addresses
var locationPartKeys = []string{"city", "region", "state", "country", "countryCode"}

// Experience
var (
	experienceListKeys = []string{"experience", "experiences", "workExperience", "work_experience", "work", "employment", "employmentHistory", "positions", "jobs"}
	companyKeys        = []string{"company", "employer", "organization", "organisation", "companyName", "company_name", "name"}
	titleKeys          = []string{"title", "position", "role", "jobTitle", "job_title"}
	startDateKeys      = []string{"startDate", "start_date", "start", "from", "dateFrom"}
	endDateKeys        = []string{"endDate", "end_date", "end", "to", "dateTo"}
	dateRangeKeys      = []string{"dates", "period", "duration", "dateRange", "date_range"}
	descriptionKeys    = []string{"description", "summary"}
	bulletKeys         = []string{"bullets", "achievements", "highlights", "responsibilities", "accomplishments"}
	currentKeys        = []string{"current", "isCurrent", "is_current", "currentlyWorking"}
)

// Experience entries are recognized at the top level by a company plus one of these
var experienceEntryTitleKeys = []string{"title", "position", "role", "jobTitle", "job_title"}

// Education
var (
	educationListKeys = []string{"education", "educations", "schools", "academics", "academic"}
	schoolKeys        = []string{"school", "institution", "university", "college", "name"}
	degreeKeys        = []string{"degree", "studyType", "study_type", "qualification", "degreeType"}
	fieldKeys         = []string{"field", "fieldOfStudy", "field_of_study", "major", "area", "study"}
	gpaKeys           = []string{"gpa", "grade", "score"}
)

// Projects
var (
	projectListKeys = []string{"projects", "personalProjects", "personal_projects", "sideProjects", "side_projects"}
	projectNameKeys = []string{"name", "title", "projectName", "project_name"}
	projectLinkKeys = []string{"link", "url", "website", "repo", "repository", "github"}
)

// Skills
const (
	CategoryLanguages  = "languages"
	CategoryFrameworks = "frameworks"
	CategoryTools      = "tools"
	CategoryOther      = "other"
)

var skillsKeys = []string{"skills", "technicalSkills", "technical_skills", "skillSet", "skill_set"}

// skillCategoryAliases maps lower-cased category names to the four skill categories.
// Categories missing from this table are placed in other.
var skillCategoryAliases = map[string]string{
	"languages":                CategoryLanguages,
	"programming languages":    CategoryLanguages,
	"programminglanguages":     CategoryLanguages,
	"programming_languages":    CategoryLanguages,
	"programming":              CategoryLanguages,
	"langs":                    CategoryLanguages,
	"frameworks":               CategoryFrameworks,
	"libraries":                CategoryFrameworks,
	"frameworks & libraries":   CategoryFrameworks,
	"frameworks and libraries": CategoryFrameworks,
	"frameworksandlibraries":   CategoryFrameworks,
	"libs":                     CategoryFrameworks,
	"tools":                    CategoryTools,
	"tooling":                  CategoryTools,
	"devops":                   CategoryTools,
	"platforms":                CategoryTools,
	"databases":                CategoryTools,
	"software":                 CategoryTools,
	"tools & platforms":        CategoryTools,
	"tools and platforms":      CategoryTools,
	"other":                    CategoryOther,
	"misc":                     CategoryOther,
}

var (
	skillNameKeys     = []string{"name", "skill", "label"}
	skillCategoryKeys = []string{"category", "type", "group"}
	skillItemsKeys    = []string{"keywords", "items", "skills", "values"}
)

// Spoken languages and interests
var (
	languageListKeys = []string{"languages", "spokenLanguages", "spoken_languages"}
	languageNameKeys = []string{"name", "language"}
	proficiencyKeys  = []string{"proficiency", "level", "fluency"}
	interestListKeys = []string{"interests", "hobbies"}
)

// Other sections
var (
	otherSectionsKeys = []string{"otherSections", "other_sections", "additionalSections"}
	sectionTitleKeys  = []string{"title", "name", "heading"}
	sectionItemsKeys  = []string{"items", "entries", "values"}
)

// namedSections are top-level lists carried into otherSections under a display title
var namedSections = []struct {
	Key   string
	Title string
}{
	{"certifications", "Certifications"},
	{"certificates", "Certifications"},
	{"awards", "Awards"},
	{"honors", "Awards"},
	{"publications", "Publications"},
	{"volunteer", "Volunteer"},
	{"courses", "Courses"},
	{"references", "References"},
}

// detail fields joined into an item when an other-section entry is an object
var sectionEntryKeys = []string{"name", "title", "issuer", "awarder", "publisher", "organization", "date", "releaseDate"}

// Metadata
var (
	metadataKeys = []string{"metadata", "meta"}
	languageKeys = []string{"language", "lang", "locale"}
)

// DefaultLanguage is used when the input does not state the resume language
const DefaultLanguage = "en"
