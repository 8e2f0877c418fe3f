package mapping

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/jonathan/resume-normalizer/internal/types"
)

// mapSkills groups skills into the four categories. Input may be a category object, a flat
// list, a list of {name, keywords, category} groups or a comma separated string. Anything
// whose category cannot be determined goes to other.
func mapSkills(obj map[string]any) types.SkillSet {
	set := emptySkillSet()

	v, ok := firstPresent(obj, skillsKeys)
	if !ok {
		return set.result()
	}

	switch x := v.(type) {
	case map[string]any:
		addCategorized(&set, CategoryOther, x)
	case []any:
		for _, item := range x {
			addSkillItem(&set, item)
		}
	default:
		set.add(CategoryOther, splitList(x)...)
	}

	return set.result()
}

// addCategorized adds each key of a category object under the category its label names.
// Nested category objects ({"technical": {"languages": [...]}}) are walked; a key that names
// no known category inherits fallback.
func addCategorized(set *skillAccumulator, fallback string, categories map[string]any) {
	labels := lo.Keys(categories)
	slices.Sort(labels)
	for _, label := range labels {
		category, known := skillCategoryAliases[strings.ToLower(strings.TrimSpace(label))]
		if !known {
			category = fallback
		}
		if nested, ok := objectValue(categories[label]); ok {
			if name := firstString(nested, skillNameKeys); name != "" {
				// {"languages": {"name": "Go", "level": "expert"}} is a single skill
				set.add(category, name)
				continue
			}
			addCategorized(set, category, nested)
			continue
		}
		set.add(category, splitList(categories[label])...)
	}
}

func addSkillItem(set *skillAccumulator, item any) {
	group, ok := objectValue(item)
	if !ok {
		set.add(CategoryOther, splitList(item)...)
		return
	}

	name := firstString(group, skillNameKeys)
	category := categoryFor(firstString(group, skillCategoryKeys))

	var items []string
	for _, key := range skillItemsKeys {
		if list := splitList(group[key]); len(list) > 0 {
			items = list
			break
		}
	}

	if len(items) == 0 {
		// {name: "Go", category: "languages"}
		set.add(category, name)
		return
	}
	// {name: "Languages", keywords: [...]} names the group itself
	if category == CategoryOther {
		category = categoryFor(name)
	}
	set.add(category, items...)
}

// categoryFor maps a category label to one of the four categories
func categoryFor(label string) string {
	key := strings.ToLower(strings.TrimSpace(label))
	if c, ok := skillCategoryAliases[key]; ok {
		return c
	}
	return CategoryOther
}

type skillAccumulator struct {
	categories map[string][]string
}

func emptySkillSet() skillAccumulator {
	return skillAccumulator{categories: map[string][]string{
		CategoryLanguages:  {},
		CategoryFrameworks: {},
		CategoryTools:      {},
		CategoryOther:      {},
	}}
}

func (a *skillAccumulator) add(category string, skills ...string) {
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			a.categories[category] = append(a.categories[category], s)
		}
	}
}

func (a *skillAccumulator) result() types.SkillSet {
	return types.SkillSet{
		Languages:  uniqueFold(a.categories[CategoryLanguages]),
		Frameworks: uniqueFold(a.categories[CategoryFrameworks]),
		Tools:      uniqueFold(a.categories[CategoryTools]),
		Other:      uniqueFold(a.categories[CategoryOther]),
	}
}
