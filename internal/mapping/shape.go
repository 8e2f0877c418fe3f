package mapping

import "github.com/samber/lo"

// SourceShape identifies which family of input vocabulary a parsed object uses
type SourceShape int

// Recognized source shapes
const (
	// ShapeEmpty has no recognized fields; it maps to an all-default result
	ShapeEmpty SourceShape = iota
	// ShapeCanonical resembles the Resume JSON: a header object plus canonical collections
	ShapeCanonical
	// ShapeUniversal resembles UniversalResumeData: a personalInfo object
	ShapeUniversal
	// ShapeThirdParty uses alternate vocabularies (JSON Resume basics/work, flat contact fields...)
	ShapeThirdParty
	// ShapeExperienceEntry is a single experience entry given at the top level
	ShapeExperienceEntry
)

func (s SourceShape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeCanonical:
		return "canonical"
	case ShapeUniversal:
		return "universal"
	case ShapeThirdParty:
		return "third-party"
	case ShapeExperienceEntry:
		return "experience-entry"
	default:
		return "unknown"
	}
}

// recognizedKeys are the top-level fields that mark an object as a resume of some shape.
// Every personal-info alias table is included so any field the mapper reads is recognized.
var recognizedKeys = lo.Uniq(concat(
	personalContainerKeys, fullNameKeys, firstNameKeys, lastNameKeys, emailKeys, phoneKeys,
	locationKeys, linkedInKeys, gitHubKeys, portfolioKeys, linksKeys, summaryKeys,
	experienceListKeys, educationListKeys, projectListKeys, skillsKeys, languageListKeys,
	interestListKeys, otherSectionsKeys, metadataKeys,
))

// experienceEntryKeys are the fields a single experience entry may carry
var experienceEntryKeys = concat(
	companyKeys, titleKeys, startDateKeys, endDateKeys, dateRangeKeys,
	descriptionKeys, bulletKeys, currentKeys, locationKeys,
)

// resumeOnlyKeys are recognized fields that never belong to an experience entry
var resumeOnlyKeys = lo.Without(recognizedKeys, experienceEntryKeys...)

// DetectShape classifies a parsed object
func DetectShape(obj map[string]any) SourceShape {
	if _, ok := objectValue(obj["header"]); ok {
		return ShapeCanonical
	}
	if _, ok := objectValue(obj["personalInfo"]); ok {
		return ShapeUniversal
	}
	if isExperienceEntry(obj) {
		return ShapeExperienceEntry
	}
	if hasAny(obj, recognizedKeys) || hasNamedSection(obj) {
		return ShapeThirdParty
	}
	return ShapeEmpty
}

// isExperienceEntry reports a top-level position with nothing else that belongs to a resume
func isExperienceEntry(obj map[string]any) bool {
	return hasTopLevelPosition(obj) && !hasAny(obj, resumeOnlyKeys) && !hasNamedSection(obj)
}

// hasTopLevelPosition reports a top-level company plus position or title with no experience list
func hasTopLevelPosition(obj map[string]any) bool {
	if _, ok := firstList(obj, experienceListKeys); ok {
		return false
	}
	company, ok := stringValue(obj["company"])
	if !ok || company == "" {
		return false
	}
	return firstString(obj, experienceEntryTitleKeys) != ""
}

func hasNamedSection(obj map[string]any) bool {
	for _, s := range namedSections {
		if _, ok := obj[s.Key]; ok {
			return true
		}
	}
	return false
}

// personalContainers returns the objects to search for personal info, most specific first
func personalContainers(shape SourceShape, obj map[string]any) []map[string]any {
	var primary string
	switch shape {
	case ShapeCanonical:
		primary = "header"
	case ShapeUniversal:
		primary = "personalInfo"
	}

	containers := make([]map[string]any, 0, len(personalContainerKeys)+1)
	if c, ok := objectValue(obj[primary]); ok {
		containers = append(containers, c)
	}
	for _, key := range personalContainerKeys {
		if key == primary {
			continue
		}
		if c, ok := objectValue(obj[key]); ok {
			containers = append(containers, c)
		}
	}
	return append(containers, obj)
}

func concat(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
