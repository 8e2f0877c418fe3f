// Package parsing segments free-text job postings into loosely structured records.
// Parsing is heuristic and never fails: anything that cannot be recognized is left absent.
package parsing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/jonathan/resume-normalizer/internal/ingestion"
	"github.com/jonathan/resume-normalizer/internal/types"
)

// Record fields settable from "Key: value" lines
const (
	fieldTitle          = "title"
	fieldCompany        = "company"
	fieldLocation       = "location"
	fieldEmploymentType = "employmentType"
	fieldWorkMode       = "workMode"
	fieldSeniority      = "seniority"
)

// fieldKeys maps lower-cased labels to record fields
var fieldKeys = map[string]string{
	"title":            fieldTitle,
	"job title":        fieldTitle,
	"position":         fieldTitle,
	"position title":   fieldTitle,
	"role":             fieldTitle,
	"company":          fieldCompany,
	"company name":     fieldCompany,
	"employer":         fieldCompany,
	"organization":     fieldCompany,
	"location":         fieldLocation,
	"job location":     fieldLocation,
	"office":           fieldLocation,
	"employment type":  fieldEmploymentType,
	"job type":         fieldEmploymentType,
	"contract type":    fieldEmploymentType,
	"work mode":        fieldWorkMode,
	"workplace type":   fieldWorkMode,
	"work arrangement": fieldWorkMode,
	"remote policy":    fieldWorkMode,
	"seniority":        fieldSeniority,
	"seniority level":  fieldSeniority,
	"experience level": fieldSeniority,
	"level":            fieldSeniority,
}

const (
	// maxFieldWords keeps prose sentences containing a colon from being read as fields
	maxFieldWords = 12
	// maxTitleWords bounds a first line treated as "Role at Company"
	maxTitleWords = 12
)

// separatorRe splits "Role at Company" / "Role - Company" / "Role | Company" first lines
var separatorRe = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|@|[-–—|])\s+(.+)$`)

// roleNouns mark a line as a job title
var roleNouns = regexp.MustCompile(`(?i)\b(?:engineer|developer|programmer|architect|manager|designer|analyst|scientist|researcher|intern|lead|director|specialist|consultant|administrator|coordinator|officer|representative|sre|devops|head of)\b`)

type keyword struct {
	pattern *regexp.Regexp
	value   string
}

func kw(pattern, value string) keyword {
	return keyword{pattern: regexp.MustCompile(`(?i)\b(?:` + pattern + `)\b`), value: value}
}

var employmentTypes = []keyword{
	kw(`full[- ]?time`, "full-time"),
	kw(`part[- ]?time`, "part-time"),
	kw(`internship|intern`, "internship"),
	kw(`contract|contractor|freelance`, "contract"),
	kw(`temporary|temp`, "temporary"),
}

var workModes = []keyword{
	kw(`hybrid`, "hybrid"),
	kw(`remote|fully remote|work from home|wfh`, "remote"),
	kw(`on[- ]?site|in[- ]office|in office`, "on-site"),
}

var seniorities = []keyword{
	kw(`intern|internship`, "intern"),
	kw(`principal`, "principal"),
	kw(`staff`, "staff"),
	kw(`lead|head of|tech lead`, "lead"),
	kw(`senior|sr`, "senior"),
	kw(`junior|jr|entry[- ]level|graduate`, "junior"),
	kw(`mid[- ]level|mid|intermediate`, "mid"),
}

// ParseJobDescription segments a job posting. Empty or whitespace-only input yields a
// record with every field absent.
func ParseJobDescription(text string) *types.JobDescriptionRecord {
	record := &types.JobDescriptionRecord{}

	text = ingestion.Normalize(text)
	if text == "" {
		return record
	}

	p := &jobParser{record: record, current: -1, fields: make(map[string]string)}
	for _, line := range strings.Split(text, "\n") {
		p.consume(line)
	}
	p.finish(text)

	return record
}

type jobParser struct {
	record     *types.JobDescriptionRecord
	current    int // index into record.Sections, -1 before the first heading
	preamble   []string
	fields     map[string]string
	sawContent bool
}

func (p *jobParser) consume(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	first := !p.sawContent
	p.sawContent = true

	if field, value, ok := splitField(line); ok {
		if _, set := p.fields[field]; !set {
			p.fields[field] = value
		}
		return
	}

	// a leading markdown heading is the posting title, not a section
	if first && isMarkdownHeading(line) {
		p.preamble = append(p.preamble, strings.TrimSpace(markdownHeadingRe.ReplaceAllString(line, "")))
		return
	}

	if heading, kind, inline, ok := matchHeader(line); ok {
		p.record.Sections = append(p.record.Sections, types.JobSection{Heading: heading, Kind: kind, Lines: []string{}})
		p.current = len(p.record.Sections) - 1
		if item := stripBullet(inline); item != "" {
			p.addLine(item)
		}
		return
	}

	if item := stripBullet(line); item != "" {
		p.addLine(item)
	}
}

func (p *jobParser) addLine(item string) {
	if p.current < 0 {
		p.preamble = append(p.preamble, item)
		return
	}
	p.record.Sections[p.current].Lines = append(p.record.Sections[p.current].Lines, item)
}

func (p *jobParser) finish(text string) {
	r := p.record
	r.Title = p.fields[fieldTitle]
	r.Company = p.fields[fieldCompany]
	r.Location = p.fields[fieldLocation]

	preamble := p.preamble
	if r.Title == "" && len(preamble) > 0 {
		if title, company, ok := splitTitleLine(preamble[0]); ok {
			r.Title = title
			if r.Company == "" {
				r.Company = company
			}
			preamble = preamble[1:]
		}
	}

	for _, section := range r.Sections {
		switch section.Kind {
		case SectionResponsibilities:
			r.Responsibilities = append(r.Responsibilities, section.Lines...)
		case SectionRequirements:
			r.Requirements = append(r.Requirements, section.Lines...)
		case SectionNiceToHave:
			r.NiceToHave = append(r.NiceToHave, section.Lines...)
		case SectionBenefits:
			r.Benefits = append(r.Benefits, section.Lines...)
		case SectionAboutCompany:
			r.AboutCompany = joinProse(r.AboutCompany, section.Lines)
		case SectionSummary:
			r.Summary = joinProse(r.Summary, section.Lines)
		}
	}
	if r.Summary == "" {
		r.Summary = joinProse("", preamble)
	}

	r.EmploymentType = classify(p.fields[fieldEmploymentType], employmentTypes, text)
	r.WorkMode = classify(p.fields[fieldWorkMode], workModes, r.Location+"\n"+text)
	if r.Title != "" {
		r.Seniority = matchKeyword(r.Title, seniorities)
	}
	if r.Seniority == "" && p.fields[fieldSeniority] != "" {
		r.Seniority = normalizeKeyword(p.fields[fieldSeniority], seniorities)
	}

	if skills := extractSkills(text); len(skills) > 0 {
		r.Skills = skills
	}
}

// splitField parses a short "Key: value" line whose key is a known record field
func splitField(line string) (field, value string, ok bool) {
	label, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}

	label = strings.ToLower(strings.TrimSpace(strings.Trim(stripBullet(label), "*_")))
	value = strings.TrimSpace(strings.Trim(strings.TrimSpace(value), "*_"))

	field, known := fieldKeys[label]
	if !known || value == "" || len(strings.Fields(value)) > maxFieldWords {
		return "", "", false
	}
	return field, value, true
}

// splitTitleLine recognizes a first line naming the role, optionally with the company
func splitTitleLine(line string) (title, company string, ok bool) {
	if len(strings.Fields(line)) > maxTitleWords {
		return "", "", false
	}

	if m := separatorRe.FindStringSubmatch(line); m != nil && roleNouns.MatchString(m[1]) {
		title = strings.TrimSpace(m[1])
		company = strings.TrimSpace(m[2])
		// "Engineer - Remote" names a work mode, not a company
		if matchKeyword(company, workModes) != "" {
			company = ""
		}
		return title, company, true
	}

	if roleNouns.MatchString(line) && !strings.ContainsAny(line, ".!?") {
		return line, "", true
	}

	return "", "", false
}

// classify prefers an explicit field value and falls back to scanning text
func classify(explicit string, table []keyword, text string) string {
	if explicit != "" {
		return normalizeKeyword(explicit, table)
	}
	return matchKeyword(text, table)
}

// matchKeyword returns the value of the first table entry found in text
func matchKeyword(text string, table []keyword) string {
	for _, k := range table {
		if k.pattern.MatchString(text) {
			return k.value
		}
	}
	return ""
}

// normalizeKeyword maps an explicit value onto the table, keeping it as written when unrecognized
func normalizeKeyword(value string, table []keyword) string {
	if v := matchKeyword(value, table); v != "" {
		return v
	}
	return strings.TrimSpace(value)
}

func joinProse(existing string, lines []string) string {
	parts := lo.Filter(append([]string{existing}, lines...), func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})
	return strings.Join(parts, " ")
}

type skillPattern struct {
	name    string
	pattern *regexp.Regexp
}

// skillKeywords lists recognized skills; case-sensitive names would otherwise match common words
var skillKeywords = []struct {
	name          string
	caseSensitive bool
}{
	{"Go", true}, {"Golang", false}, {"Python", false}, {"Java", false}, {"JavaScript", false},
	{"TypeScript", false}, {"Rust", false}, {"C++", false}, {"C#", false}, {"Ruby", false},
	{"Rails", true}, {"Django", false}, {"Flask", false}, {"Spring", true},
	{"React", false}, {"Vue", false}, {"Angular", false}, {"Node.js", false},
	{"Docker", false}, {"Kubernetes", false}, {"k8s", false}, {"Terraform", false},
	{"PostgreSQL", false}, {"Postgres", false}, {"MySQL", false}, {"MongoDB", false}, {"Redis", false},
	{"Kafka", false}, {"SQL", true}, {"GraphQL", false}, {"gRPC", false}, {"REST", true},
	{"AWS", false}, {"Azure", false}, {"GCP", false}, {"Linux", false}, {"Git", false},
	{"CI/CD", false}, {"Microservices", false}, {"Machine Learning", false},
	{"Data Science", false}, {"DevOps", false},
}

var skillPatterns = compileSkillPatterns()

func compileSkillPatterns() []skillPattern {
	patterns := make([]skillPattern, 0, len(skillKeywords))
	for _, s := range skillKeywords {
		flags := "(?i)"
		if s.caseSensitive {
			flags = ""
		}
		re := regexp.MustCompile(flags + `(?:^|[^\pL\pN+#.])(` + regexp.QuoteMeta(s.name) + `)(?:$|[^\pL\pN+#])`)
		patterns = append(patterns, skillPattern{name: s.name, pattern: re})
	}
	return patterns
}

// extractSkills finds whole-token skill mentions and returns them normalized in order of appearance
func extractSkills(text string) []string {
	type hit struct {
		pos  int
		name string
	}

	var hits []hit
	for _, sp := range skillPatterns {
		if loc := sp.pattern.FindStringSubmatchIndex(text); loc != nil {
			hits = append(hits, hit{pos: loc[2], name: sp.name})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	return NormalizeSkills(lo.Map(hits, func(h hit, _ int) string { return h.name }))
}
