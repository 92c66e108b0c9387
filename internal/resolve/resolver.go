// Package resolve maps a classified field category to a concrete value from
// the user's profile document, via ordered candidate paths that support both
// the canonical nested profile shape and legacy flat keys.
package resolve

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// Resolve finds the profile value for a category. cardIndex scopes
// experience categories: card i reads experiences[i-1], the general path
// (cardIndex 0) reads experiences[0]. Returns ("", false) on a miss.
func Resolve(category model.Category, profile model.Profile, cardIndex int) (string, bool) {
	if profile.Empty() {
		return "", false
	}

	switch {
	case category == model.CategoryFullName:
		return fullName(profile)
	case category.IsExperienceScoped():
		return experienceValue(category, profile, cardIndex)
	}

	for _, path := range categoryPaths[category] {
		if v, ok := profile.Get(path); ok {
			if s, ok := valueToString(v); ok {
				return s, true
			}
		}
	}
	return "", false
}

var (
	firstOnlyRe = regexp.MustCompile(`(?i)\b(first|given|fname)`)
	lastOnlyRe  = regexp.MustCompile(`(?i)\b(last|sur|family|lname)`)
)

// ResolveField resolves the value for one detected field. Controls the
// classifier grouped under fullName sometimes turn out to be split name
// fields; an unambiguous first-only or last-only signal in the control's
// own text overrides the category before standard resolution.
func ResolveField(field *model.DetectedField, profile model.Profile) (string, bool) {
	category := field.Category
	if category == model.CategoryFullName {
		text := field.Control.Attrs.SearchText()
		hasFirst := firstOnlyRe.MatchString(text)
		hasLast := lastOnlyRe.MatchString(text)
		switch {
		case hasFirst && !hasLast:
			category = model.CategoryFirstName
		case hasLast && !hasFirst:
			category = model.CategoryLastName
		}
	}
	return Resolve(category, profile, field.CardIndex)
}

// fullName is always recomposed from the first/last name parts, even when
// the profile stores a literal fullName, so it tracks whichever part the
// user edited last.
func fullName(profile model.Profile) (string, bool) {
	first, _ := Resolve(model.CategoryFirstName, profile, 0)
	last, _ := Resolve(model.CategoryLastName, profile, 0)
	full := strings.TrimSpace(first + " " + last)
	return full, full != ""
}

func experienceValue(category model.Category, profile model.Profile, cardIndex int) (string, bool) {
	experiences := profile.Experiences()
	idx := 0
	if cardIndex > 0 {
		idx = cardIndex - 1
	}
	if idx >= len(experiences) {
		return "", false
	}
	entry := experiences[idx]
	for _, key := range experienceKeys[category] {
		if v, ok := entry[key]; ok {
			if s, ok := valueToString(v); ok {
				return s, true
			}
		}
	}
	return "", false
}

// valueToString converts a profile value into its fillable string form.
// Arrays (the skills list) join with ", "; numbers drop trailing zeros;
// empty strings count as misses.
func valueToString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := valueToString(item); ok {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, ", "), true
	default:
		return "", false
	}
}
