package mapping

import (
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// ToCanonical narrows UniversalResumeData to the Resume JSON shape for strict validation.
// Nothing is truncated or invented: collections that exceed schema bounds are kept so that
// validation reports them. Dates are rewritten to YYYY-MM where the input is unambiguous.
func ToCanonical(u *types.UniversalResumeData) *types.CanonicalResume {
	if u == nil {
		return nil
	}

	resume := &types.CanonicalResume{
		Metadata: types.ResumeMetadata{
			Language:       u.Metadata.Language,
			PreservedOrder: u.Metadata.PreservedOrder,
			Warnings:       slices.Clone(u.Metadata.Warnings),
		},
		Header: types.ResumeHeader{
			FullName: u.PersonalInfo.FullName,
			Email:    u.PersonalInfo.Email,
			Phone:    u.PersonalInfo.Phone,
			Location: u.PersonalInfo.Location,
			Links:    canonicalLinks(u.PersonalInfo),
		},
		Summary: u.Summary,
		Experience: lo.Map(u.Experience, func(e types.UniversalExperience, _ int) types.CanonicalExperience {
			return types.CanonicalExperience{
				Company:   e.Company,
				Title:     lo.Ternary(e.Title != "", e.Title, e.Position),
				Location:  e.Location,
				StartDate: NormalizeYearMonth(e.StartDate),
				EndDate:   NormalizeEndDate(e.EndDate),
				Bullets:   nonNil(lo.Ternary(len(e.Bullets) > 0, e.Bullets, e.Achievements)),
			}
		}),
		Education: lo.Map(u.Education, func(e types.UniversalEducation, _ int) types.CanonicalEducation {
			start, end := splitDateRange(e.Dates)
			return types.CanonicalEducation{
				School:    lo.Ternary(e.School != "", e.School, e.Institution),
				Degree:    joinNonEmpty(", ", e.Degree, e.Field),
				Location:  e.Location,
				StartDate: NormalizeYearMonth(start),
				EndDate:   NormalizeEndDate(end),
			}
		}),
	}

	if len(u.Projects) > 0 {
		resume.Projects = lo.Map(u.Projects, func(p types.UniversalProject, _ int) types.CanonicalProject {
			start, end := splitDateRange(p.Dates)
			return types.CanonicalProject{
				Name:      p.Name,
				StartDate: NormalizeYearMonth(start),
				EndDate:   NormalizeEndDate(end),
				Link:      ensureScheme(p.Link),
				Bullets:   nonNil(p.Bullets),
			}
		})
	}

	if skills := u.Skills; len(skills.Languages)+len(skills.Frameworks)+len(skills.Tools)+len(skills.Other) > 0 {
		resume.Skills = &types.SkillSet{
			Languages:  nonNil(skills.Languages),
			Frameworks: nonNil(skills.Frameworks),
			Tools:      nonNil(skills.Tools),
			Other:      nonNil(skills.Other),
		}
	}

	if len(u.Languages) > 0 {
		resume.Languages = lo.Map(u.Languages, func(l types.LanguageSkill, _ int) string {
			if l.Proficiency == "" {
				return l.Name
			}
			return l.Name + " (" + l.Proficiency + ")"
		})
	}
	if len(u.Interests) > 0 {
		resume.Interests = slices.Clone(u.Interests)
	}
	if len(u.OtherSections) > 0 {
		resume.OtherSections = lo.Map(u.OtherSections, func(s types.OtherSection, _ int) types.OtherSection {
			return types.OtherSection{Title: s.Title, Items: nonNil(s.Items)}
		})
	}

	return resume
}

func canonicalLinks(info types.PersonalInfo) *types.HeaderLinks {
	links := types.HeaderLinks{
		LinkedIn:  ensureScheme(info.LinkedIn),
		GitHub:    ensureScheme(info.GitHub),
		Portfolio: ensureScheme(info.Portfolio),
	}
	if links == (types.HeaderLinks{}) {
		return nil
	}
	return &links
}

// ensureScheme prefixes https:// to scheme-less links such as "linkedin.com/in/jane"
func ensureScheme(link string) string {
	link = strings.TrimSpace(link)
	if link == "" || strings.Contains(link, "://") || strings.HasPrefix(link, "mailto:") {
		return link
	}
	return "https://" + link
}

var (
	yearMonthRe   = regexp.MustCompile(`^(\d{4})[-/.](\d{1,2})$`)
	monthYearRe   = regexp.MustCompile(`^(\d{1,2})[-/.](\d{4})$`)
	isoDateRe     = regexp.MustCompile(`^(\d{4})-(\d{2})-\d{2}`)
	monthNameForm = []string{"Jan 2006", "January 2006", "Jan. 2006", "Jan, 2006", "January, 2006"}
)

// NormalizeYearMonth rewrites a date to YYYY-MM when the month is known.
// Year-only dates and unrecognized forms are returned unchanged; a month is never invented.
func NormalizeYearMonth(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}

	if m := yearMonthRe.FindStringSubmatch(date); m != nil {
		return formatYearMonth(m[1], m[2], date)
	}
	if m := isoDateRe.FindStringSubmatch(date); m != nil {
		return m[1] + "-" + m[2]
	}
	if m := monthYearRe.FindStringSubmatch(date); m != nil {
		return formatYearMonth(m[2], m[1], date)
	}
	for _, layout := range monthNameForm {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01")
		}
	}
	return date
}

// NormalizeEndDate is NormalizeYearMonth that also maps ongoing markers to Present
func NormalizeEndDate(date string) string {
	switch strings.ToLower(strings.TrimSpace(date)) {
	case "present", "current", "now", "ongoing", "today":
		return types.PresentEndDate
	}
	return NormalizeYearMonth(date)
}

func formatYearMonth(year, month, original string) string {
	if len(month) == 1 {
		month = "0" + month
	}
	if month < "01" || month > "12" {
		return original
	}
	return year + "-" + month
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}
