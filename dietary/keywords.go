package dietary

import (
	"regexp"
	"sort"
	"strings"
)

// keywordTable maps a canonical restriction identifier to the ingredient
// phrases that violate it. Identifiers are case-sensitive.
var keywordTable = map[string][]string{
	// Allergens.
	"Peanuts":   {"peanut", "peanuts", "peanut butter", "peanut oil", "groundnut"},
	"Tree Nuts": {"almond", "almonds", "walnut", "walnuts", "cashew", "cashews", "pecan", "pecans", "pistachio", "pistachios", "hazelnut", "hazelnuts", "macadamia", "brazil nut", "pine nut", "pine nuts"},
	"Milk":      milkKeywords,
	"Eggs":      {"egg", "eggs", "egg white", "egg yolk", "mayonnaise", "meringue", "albumin"},
	"Fish":      {"fish", "salmon", "tuna", "cod", "tilapia", "halibut", "trout", "sardine", "sardines", "anchovy", "anchovies", "mackerel"},
	"Shellfish": {"shrimp", "crab", "lobster", "prawn", "prawns", "clam", "clams", "mussel", "mussels", "oyster", "oysters", "scallop", "scallops", "shellfish", "crawfish"},
	"Wheat":     {"wheat", "flour", "bread", "pasta", "semolina", "couscous", "bulgur"},
	"Soy":       {"soy", "soya", "soybean", "soybeans", "soy sauce", "tofu", "edamame", "tempeh", "miso"},

	// Diets. Vegetarian only lists what a vegetarian avoids: dairy and eggs are allowed.
	"Vegetarian":  meatKeywords,
	"Vegan":       append(append([]string{}, meatKeywords...), "dairy", "milk", "cheese", "butter", "egg", "eggs", "honey", "gelatin"),
	"Gluten-Free": {"wheat", "barley", "rye", "gluten", "bread", "pasta", "flour", "beer", "malt"},
	"Dairy-Free":  milkKeywords,
}

var milkKeywords = []string{"milk", "dairy", "cheese", "butter", "cream", "yogurt", "lactose", "casein", "whey"}

var meatKeywords = []string{
	"chicken", "beef", "pork", "lamb", "turkey", "duck", "ham", "bacon", "sausage", "pepperoni",
	"ground beef", "ground pork", "ground turkey",
	"fish", "salmon", "tuna", "shrimp", "crab", "lobster", "seafood",
}

// compiled holds one word-boundary pattern per keyword, built once from keywordTable.
var compiled = compileTable(keywordTable)

func compileTable(table map[string][]string) map[string][]*regexp.Regexp {
	out := make(map[string][]*regexp.Regexp, len(table))
	for id, keywords := range table {
		patterns := make([]*regexp.Regexp, 0, len(keywords))
		for _, kw := range keywords {
			if re := keywordPattern(kw); re != nil {
				patterns = append(patterns, re)
			}
		}
		out[id] = patterns
	}
	return out
}

// wordGap matches the whitespace between the words of a phrase. RE2's \s is
// ASCII only, and scraped menus carry non-breaking and other Unicode spaces.
const wordGap = `[\s\v\p{Z}\x{FEFF}]+`

// keywordPattern turns "peanut butter" into `\bpeanut` + wordGap + `butter\b`.
func keywordPattern(keyword string) *regexp.Regexp {
	words := strings.Fields(strings.ToLower(keyword))
	if len(words) == 0 {
		return nil
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`\b` + strings.Join(words, wordGap) + `\b`)
}

// Keywords returns a copy of the keyword list for a restriction.
func Keywords(restriction string) ([]string, bool) {
	keywords, ok := keywordTable[restriction]
	if !ok {
		return nil, false
	}
	return append([]string(nil), keywords...), true
}

// Restrictions lists every known restriction identifier in sorted order.
func Restrictions() []string {
	ids := make([]string, 0, len(keywordTable))
	for id := range keywordTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsKnown reports whether the restriction has an entry in the keyword table.
func IsKnown(restriction string) bool {
	_, ok := keywordTable[restriction]
	return ok
}
