package mapping

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-normalizer/internal/types"
)

var (
	// "English (Native)"
	parenthesizedProficiency = regexp.MustCompile(`^(.+?)\s*\(([^)]*)\)$`)
	// "English - Native", "English – Native", "English: Native"
	separatedProficiency = regexp.MustCompile(`^(.+?)\s*(?:\s-\s|[–—:])\s*(.+)$`)
)

// mapLanguages reads spoken languages. Proficiency is taken only from the input and is
// empty when none is stated.
func mapLanguages(obj map[string]any) []types.LanguageSkill {
	out := []types.LanguageSkill{}

	v, ok := firstPresent(obj, languageListKeys)
	if !ok {
		return out
	}

	var items []any
	switch x := v.(type) {
	case []any:
		items = x
	case map[string]any:
		items = []any{x}
	default:
		for _, s := range splitList(x) {
			items = append(items, s)
		}
	}

	for _, item := range items {
		var lang types.LanguageSkill
		if entry, ok := objectValue(item); ok {
			lang = types.LanguageSkill{
				Name:        firstString(entry, languageNameKeys),
				Proficiency: firstString(entry, proficiencyKeys),
			}
		} else if s, ok := stringValue(item); ok {
			lang = parseLanguage(s)
		}
		if lang.Name != "" {
			out = append(out, lang)
		}
	}
	return out
}

func parseLanguage(s string) types.LanguageSkill {
	s = strings.TrimSpace(s)
	if m := parenthesizedProficiency.FindStringSubmatch(s); m != nil {
		return types.LanguageSkill{Name: strings.TrimSpace(m[1]), Proficiency: strings.TrimSpace(m[2])}
	}
	if m := separatedProficiency.FindStringSubmatch(s); m != nil {
		return types.LanguageSkill{Name: strings.TrimSpace(m[1]), Proficiency: strings.TrimSpace(m[2])}
	}
	return types.LanguageSkill{Name: s}
}

// mapInterests passes interests through with whitespace trimmed
func mapInterests(obj map[string]any) []string {
	v, ok := firstPresent(obj, interestListKeys)
	if !ok {
		return []string{}
	}
	return splitList(v)
}

// mapOtherSections keeps explicit otherSections and carries certifications, awards and
// similar top-level lists as titled sections
func mapOtherSections(obj map[string]any) []types.OtherSection {
	out := []types.OtherSection{}
	index := map[string]int{}

	add := func(title string, items []string) {
		if title == "" || len(items) == 0 {
			return
		}
		if i, ok := index[strings.ToLower(title)]; ok {
			out[i].Items = append(out[i].Items, items...)
			return
		}
		index[strings.ToLower(title)] = len(out)
		out = append(out, types.OtherSection{Title: title, Items: items})
	}

	if list, ok := firstList(obj, otherSectionsKeys); ok {
		for _, item := range list {
			section, ok := objectValue(item)
			if !ok {
				continue
			}
			add(firstString(section, sectionTitleKeys), firstStringList(section, sectionItemsKeys))
		}
	}

	for _, named := range namedSections {
		list, ok := obj[named.Key].([]any)
		if !ok {
			continue
		}
		items := make([]string, 0, len(list))
		for _, entry := range list {
			if item := sectionItem(entry); item != "" {
				items = append(items, item)
			}
		}
		add(named.Title, items)
	}

	return out
}

// sectionItem renders an entry as text; objects join their descriptive fields with commas
func sectionItem(entry any) string {
	if obj, ok := objectValue(entry); ok {
		parts := make([]string, 0, len(sectionEntryKeys))
		for _, key := range sectionEntryKeys {
			if s, ok := stringValue(obj[key]); ok {
				parts = append(parts, s)
			}
		}
		return joinNonEmpty(", ", parts...)
	}
	s, _ := stringValue(entry)
	return s
}
