// Package mapping reconciles arbitrarily shaped parse results into UniversalResumeData.
//
// The mapper accepts objects in any of the recognized source shapes (see SourceShape) and
// always produces a fully populated result: absent data becomes an empty string or an
// empty list, never a missing field. It fails only when the input is not an object.
package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// EnDash joins education start and end dates into a single display string
const EnDash = "–"

// MapJSON decodes data and maps it. Unparsable JSON is an InvalidInputError.
func MapJSON(data []byte) (*types.UniversalResumeData, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, &InvalidInputError{Kind: "invalid JSON", Cause: err}
	}
	return MapToUniversal(parsed)
}

// MapToUniversal maps a parsed object to UniversalResumeData.
// Values other than map[string]any are round-tripped through encoding/json first, so typed
// structs such as *types.CanonicalResume are accepted too.
func MapToUniversal(parsed any) (*types.UniversalResumeData, error) {
	obj, err := asObject(parsed)
	if err != nil {
		return nil, err
	}

	return mapObject(obj), nil
}

func asObject(parsed any) (map[string]any, error) {
	switch v := parsed.(type) {
	case nil:
		return nil, &InvalidInputError{Kind: "null"}
	case map[string]any:
		return v, nil
	case json.RawMessage:
		return decodeObject(v)
	case []any, []map[string]any:
		return nil, &InvalidInputError{Kind: "array"}
	case string, bool, float64, float32, int, int64, json.Number:
		return nil, &InvalidInputError{Kind: fmt.Sprintf("%T", v)}
	}

	data, err := json.Marshal(parsed)
	if err != nil {
		return nil, &InvalidInputError{Kind: fmt.Sprintf("%T", parsed), Cause: err}
	}
	return decodeObject(data)
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &InvalidInputError{Kind: "invalid JSON", Cause: err}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &InvalidInputError{Kind: kindOf(v)}
	}
	return obj, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Empty returns a UniversalResumeData with every field at its default
func Empty() *types.UniversalResumeData {
	return &types.UniversalResumeData{
		Metadata: types.ResumeMetadata{
			Language:       DefaultLanguage,
			PreservedOrder: true,
			Warnings:       []string{},
		},
		Experience: []types.UniversalExperience{},
		Education:  []types.UniversalEducation{},
		Projects:   []types.UniversalProject{},
		Skills: types.SkillSet{
			Languages:  []string{},
			Frameworks: []string{},
			Tools:      []string{},
			Other:      []string{},
		},
		Languages:     []types.LanguageSkill{},
		Interests:     []string{},
		OtherSections: []types.OtherSection{},
	}
}

func mapObject(obj map[string]any) *types.UniversalResumeData {
	out := Empty()
	shape := DetectShape(obj)

	switch shape {
	case ShapeEmpty:
		return out
	case ShapeExperienceEntry:
		// top-level fields describe the position, so only nested containers hold personal info
		containers := personalContainers(shape, obj)
		out.PersonalInfo = mapPersonalInfo(containers[:len(containers)-1])
		out.Experience = append(out.Experience, mapExperience(obj))
		return out
	}

	m := &mapper{out: out}
	containers := personalContainers(shape, obj)

	m.mapMetadata(obj)
	out.PersonalInfo = mapPersonalInfo(containers)
	out.Summary = firstStringIn(append([]map[string]any{obj}, containers...), summaryKeys)
	m.mapList(obj, experienceListKeys, "experience", func(e map[string]any) {
		out.Experience = append(out.Experience, mapExperience(e))
	})
	if shape == ShapeThirdParty && hasTopLevelPosition(obj) {
		// flat records name the current position at the top level; summary and location describe the person
		current := lo.OmitByKeys(obj, concat(summaryKeys, locationKeys))
		out.Experience = append(out.Experience, mapExperience(current))
	}
	m.mapList(obj, educationListKeys, "education", func(e map[string]any) {
		out.Education = append(out.Education, mapEducation(e))
	})
	m.mapList(obj, projectListKeys, "projects", func(e map[string]any) {
		out.Projects = append(out.Projects, mapProject(e))
	})
	out.Skills = mapSkills(obj)
	out.Languages = mapLanguages(obj)
	out.Interests = mapInterests(obj)
	out.OtherSections = mapOtherSections(obj)

	return out
}

type mapper struct {
	out *types.UniversalResumeData
}

func (m *mapper) warn(format string, args ...any) {
	m.out.Metadata.Warnings = append(m.out.Metadata.Warnings, fmt.Sprintf(format, args...))
}

// mapList visits the object entries of the first list under keys in input order.
// Non-object entries are skipped with a warning.
func (m *mapper) mapList(obj map[string]any, keys []string, name string, visit func(map[string]any)) {
	list, ok := firstList(obj, keys)
	if !ok {
		return
	}
	for i, item := range list {
		entry, ok := objectValue(item)
		if !ok {
			m.warn("%s[%d] is not an object; skipped", name, i)
			continue
		}
		visit(entry)
	}
}

func (m *mapper) mapMetadata(obj map[string]any) {
	meta, ok := firstObject(obj, metadataKeys)
	if !ok {
		return
	}
	if lang := firstString(meta, languageKeys); lang != "" {
		m.out.Metadata.Language = lang
	}
	if v, ok := meta["preservedOrder"].(bool); ok {
		m.out.Metadata.PreservedOrder = v
	}
	m.out.Metadata.Warnings = append(m.out.Metadata.Warnings, stringList(meta["warnings"])...)
}

func mapPersonalInfo(containers []map[string]any) types.PersonalInfo {
	info := types.PersonalInfo{
		FullName: firstStringIn(containers, fullNameKeys),
		Email:    firstStringIn(containers, emailKeys),
		Phone:    firstStringIn(containers, phoneKeys),
		Location: firstStringIn(containers, locationKeys),
	}

	if info.FullName == "" {
		info.FullName = structuredName(containers)
	}
	if info.Location == "" {
		info.Location = structuredLocation(containers)
	}

	// link objects nested under links/profiles are searched after direct fields
	linkContainers := slices.Clone(containers)
	for _, c := range containers {
		if links, ok := firstObject(c, linksKeys); ok {
			linkContainers = append(linkContainers, links)
		}
	}
	info.LinkedIn = firstStringIn(linkContainers, linkedInKeys)
	info.GitHub = firstStringIn(linkContainers, gitHubKeys)
	info.Portfolio = firstStringIn(linkContainers, portfolioKeys)

	if info.LinkedIn == "" || info.GitHub == "" {
		linkedIn, gitHub := profileLinks(containers)
		if info.LinkedIn == "" {
			info.LinkedIn = linkedIn
		}
		if info.GitHub == "" {
			info.GitHub = gitHub
		}
	}

	return info
}

// structuredName reads {name: {first, last}} or firstName/lastName fields
func structuredName(containers []map[string]any) string {
	for _, c := range containers {
		if name, ok := firstObject(c, fullNameKeys); ok {
			if full := joinNonEmpty(" ", firstString(name, []string{"first", "given"}), firstString(name, []string{"last", "family"})); full != "" {
				return full
			}
		}
	}
	return joinNonEmpty(" ", firstStringIn(containers, firstNameKeys), firstStringIn(containers, lastNameKeys))
}

// structuredLocation reads {location: {city, region, country}}
func structuredLocation(containers []map[string]any) string {
	for _, c := range containers {
		if loc, ok := firstObject(c, locationKeys); ok {
			parts := make([]string, 0, len(locationPartKeys))
			for _, key := range locationPartKeys {
				if s, ok := stringValue(loc[key]); ok {
					parts = append(parts, s)
				}
			}
			if joined := joinNonEmpty(", ", parts...); joined != "" {
				return joined
			}
		}
	}
	return ""
}

// profileLinks reads JSON Resume style profiles: [{network, url}]
func profileLinks(containers []map[string]any) (linkedIn, gitHub string) {
	for _, c := range containers {
		profiles, ok := c["profiles"].([]any)
		if !ok {
			continue
		}
		for _, p := range profiles {
			profile, ok := objectValue(p)
			if !ok {
				continue
			}
			network := strings.ToLower(firstString(profile, []string{"network", "name", "type"}))
			url := firstString(profile, []string{"url", "link", "href"})
			switch {
			case strings.Contains(network, "linkedin") && linkedIn == "":
				linkedIn = url
			case strings.Contains(network, "github") && gitHub == "":
				gitHub = url
			}
		}
	}
	return linkedIn, gitHub
}

// mapExperience populates both naming aliases with the same values
func mapExperience(e map[string]any) types.UniversalExperience {
	title := firstString(e, titleKeys)
	bullets := firstStringList(e, bulletKeys)
	start, end := entryDates(e)

	return types.UniversalExperience{
		Company:      firstString(e, companyKeys),
		Position:     title,
		Title:        title,
		Location:     firstString(e, locationKeys),
		StartDate:    start,
		EndDate:      end,
		Description:  firstString(e, descriptionKeys),
		Achievements: slices.Clone(bullets),
		Bullets:      bullets,
	}
}

// entryDates reads separate start and end fields, falling back to a combined range string.
// An entry marked current with no end date ends at Present.
func entryDates(e map[string]any) (start, end string) {
	start = firstString(e, startDateKeys)
	end = firstString(e, endDateKeys)

	if start == "" && end == "" {
		start, end = splitDateRange(firstString(e, dateRangeKeys))
	}
	if end == "" && firstBool(e, currentKeys) {
		end = types.PresentEndDate
	}
	return start, end
}

// dateRangeSeparator matches the separator of a "start – end" range
var dateRangeSeparator = regexp.MustCompile(`\s*[–—]\s*|\s+-\s+|\s+to\s+`)

// splitDateRange splits "2019–2021", "2019-01 - 2021-06" or "2019 to Present"
func splitDateRange(dates string) (start, end string) {
	if dates == "" {
		return "", ""
	}
	parts := dateRangeSeparator.Split(dates, 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// joinDates joins start and end with an en-dash; a single side stands alone
func joinDates(start, end string) string {
	return joinNonEmpty(EnDash, start, end)
}

func mapEducation(e map[string]any) types.UniversalEducation {
	school := firstString(e, schoolKeys)

	dates := firstString(e, dateRangeKeys)
	if dates == "" {
		start, end := entryDates(e)
		dates = joinDates(start, end)
	}

	return types.UniversalEducation{
		Institution: school,
		School:      school,
		Degree:      firstString(e, degreeKeys),
		Field:       firstString(e, fieldKeys),
		Location:    firstString(e, locationKeys),
		Dates:       dates,
		GPA:         firstString(e, gpaKeys),
	}
}

func mapProject(e map[string]any) types.UniversalProject {
	dates := firstString(e, dateRangeKeys)
	if dates == "" {
		start, end := entryDates(e)
		dates = joinDates(start, end)
	}

	return types.UniversalProject{
		Name:        firstString(e, projectNameKeys),
		Description: firstString(e, descriptionKeys),
		Dates:       dates,
		Link:        firstString(e, projectLinkKeys),
		Bullets:     firstStringList(e, bulletKeys),
	}
}
