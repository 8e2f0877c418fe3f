package parsing

import (
	"regexp"
	"strings"
)

// Section kinds recognized in job postings
const (
	SectionResponsibilities = "responsibilities"
	SectionRequirements     = "requirements"
	SectionNiceToHave       = "niceToHave"
	SectionBenefits         = "benefits"
	SectionAboutCompany     = "aboutCompany"
	SectionSummary          = "summary"
	SectionOther            = "other"
)

// sectionHeaders maps lower-cased heading text to a section kind
var sectionHeaders = map[string]string{
	"responsibilities":          SectionResponsibilities,
	"key responsibilities":      SectionResponsibilities,
	"job responsibilities":      SectionResponsibilities,
	"your responsibilities":     SectionResponsibilities,
	"what you'll do":            SectionResponsibilities,
	"what you will do":          SectionResponsibilities,
	"what you’ll do":            SectionResponsibilities,
	"the role":                  SectionResponsibilities,
	"your role":                 SectionResponsibilities,
	"duties":                    SectionResponsibilities,
	"in this role you will":     SectionResponsibilities,
	"requirements":              SectionRequirements,
	"qualifications":            SectionRequirements,
	"minimum qualifications":    SectionRequirements,
	"basic qualifications":      SectionRequirements,
	"required qualifications":   SectionRequirements,
	"required skills":           SectionRequirements,
	"skills":                    SectionRequirements,
	"what you'll need":          SectionRequirements,
	"what you will need":        SectionRequirements,
	"what we're looking for":    SectionRequirements,
	"what we are looking for":   SectionRequirements,
	"who you are":               SectionRequirements,
	"must have":                 SectionRequirements,
	"must-have":                 SectionRequirements,
	"must haves":                SectionRequirements,
	"nice to have":              SectionNiceToHave,
	"nice-to-have":              SectionNiceToHave,
	"nice to haves":             SectionNiceToHave,
	"preferred qualifications":  SectionNiceToHave,
	"preferred skills":          SectionNiceToHave,
	"preferred":                 SectionNiceToHave,
	"bonus points":              SectionNiceToHave,
	"bonus":                     SectionNiceToHave,
	"pluses":                    SectionNiceToHave,
	"benefits":                  SectionBenefits,
	"perks":                     SectionBenefits,
	"perks and benefits":        SectionBenefits,
	"benefits and perks":        SectionBenefits,
	"what we offer":             SectionBenefits,
	"compensation":              SectionBenefits,
	"compensation and benefits": SectionBenefits,
	"about us":                  SectionAboutCompany,
	"about the company":         SectionAboutCompany,
	"who we are":                SectionAboutCompany,
	"our company":               SectionAboutCompany,
	"company overview":          SectionAboutCompany,
	"summary":                   SectionSummary,
	"job summary":               SectionSummary,
	"overview":                  SectionSummary,
	"about the role":            SectionSummary,
	"about the job":             SectionSummary,
	"about this role":           SectionSummary,
	"role overview":             SectionSummary,
	"position overview":         SectionSummary,
	"the opportunity":           SectionSummary,
	"job description":           SectionSummary,
	"description":               SectionSummary,
}

var (
	// bulletRe matches list markers: -, *, •, ·, ▪, numbered "1." or "1)"
	bulletRe = regexp.MustCompile(`^(?:[-*•·▪◦‣–]+\s*|\d{1,2}[.)]\s+)`)

	// markdownHeadingRe matches a leading markdown heading marker
	markdownHeadingRe = regexp.MustCompile(`^#{1,6}\s*`)
)

// maxHeaderWords bounds how long an unrecognized "Heading:" line may be
const maxHeaderWords = 5

// matchHeader reports whether line opens a section. It returns the heading as written, its
// kind and any content that followed the heading on the same line after a colon.
func matchHeader(line string) (heading, kind, inline string, ok bool) {
	trimmed := strings.TrimSpace(markdownHeadingRe.ReplaceAllString(line, ""))
	trimmed = strings.Trim(trimmed, "*_")
	if trimmed == "" {
		return "", "", "", false
	}

	candidate, rest, hasColon := strings.Cut(trimmed, ":")
	candidate = strings.TrimSpace(strings.Trim(candidate, "*_"))
	rest = strings.TrimSpace(strings.Trim(rest, "*_"))
	if !hasColon {
		candidate = strings.TrimRight(trimmed, ".!?")
	}

	key := strings.ToLower(candidate)
	if k, found := sectionHeaders[key]; found {
		return candidate, k, rest, true
	}

	words := len(strings.Fields(candidate))
	// "About Acme" style headings
	if strings.HasPrefix(key, "about ") && words <= maxHeaderWords && (hasColon || isMarkdownHeading(line) || words <= 3) {
		return candidate, SectionAboutCompany, rest, true
	}

	// Unrecognized heading: a short line ending with a colon, or a markdown heading
	if (hasColon && rest == "" && words <= maxHeaderWords) || (isMarkdownHeading(line) && words <= maxHeaderWords*2) {
		return candidate, SectionOther, rest, true
	}

	return "", "", "", false
}

func isMarkdownHeading(line string) bool {
	return markdownHeadingRe.MatchString(strings.TrimSpace(line))
}

// stripBullet removes a leading list marker and surrounding whitespace
func stripBullet(line string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(strings.TrimSpace(line), ""))
}
