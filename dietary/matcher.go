// Package dietary flags menu ingredients against a user's allergies and
// dietary preferences using a fixed keyword table.
//
// Matching is word-boundary based: "egg" never matches inside "eggplant".
// All functions are pure and safe for concurrent use.
package dietary

import "strings"

// IsRestricted reports whether the ingredient text matches at least one
// keyword of any restriction in allergies or dietaryRestrictions.
// Unknown restriction identifiers are ignored. With no restrictions at all
// nothing is ever restricted.
func IsRestricted(ingredient string, allergies, dietaryRestrictions []string) bool {
	if len(allergies)+len(dietaryRestrictions) == 0 {
		return false
	}
	text := strings.ToLower(ingredient)
	for _, id := range combine(allergies, dietaryRestrictions) {
		if matches(text, id) {
			return true
		}
	}
	return false
}

// MatchedRestrictions returns the restrictions whose keywords appear in the
// ingredient, de-duplicated, in the order they were supplied.
func MatchedRestrictions(ingredient string, allergies, dietaryRestrictions []string) []string {
	if len(allergies)+len(dietaryRestrictions) == 0 {
		return nil
	}
	text := strings.ToLower(ingredient)
	var matched []string
	seen := make(map[string]struct{})
	for _, id := range combine(allergies, dietaryRestrictions) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if matches(text, id) {
			matched = append(matched, id)
		}
	}
	return matched
}

func combine(allergies, dietaryRestrictions []string) []string {
	all := make([]string, 0, len(allergies)+len(dietaryRestrictions))
	all = append(all, allergies...)
	return append(all, dietaryRestrictions...)
}

func matches(lowered, restriction string) bool {
	for _, re := range compiled[restriction] {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}
