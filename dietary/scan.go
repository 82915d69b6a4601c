package dietary

// DishScan is the warning state of one dish for one user.
type DishScan struct {
	Dish               Dish     `json:"dish"`
	FlaggedIngredients []string `json:"flagged_ingredients"`
	IsFlagged          bool     `json:"is_flagged"`
	Restrictions       []string `json:"restrictions"`
}

// Summary condenses a scan for events and dashboards.
// RestrictionHits counts flagged dishes per restriction.
type Summary struct {
	TotalDishes     int            `json:"total_dishes"`
	FlaggedDishes   int            `json:"flagged_dishes"`
	RestrictionHits map[string]int `json:"restriction_hits"`
}

type matcherFunc func(ingredient string, allergies, dietaryRestrictions []string) bool

// ScanMenu flags every dish whose ingredients hit the user's restrictions.
// Results keep the input order; nothing is sorted or ranked. A dish that
// cannot be scanned comes back unflagged and does not affect the others.
func ScanMenu(dishes []Dish, allergies, dietaryRestrictions []string) []DishScan {
	return scanMenu(IsRestricted, dishes, allergies, dietaryRestrictions)
}

func scanMenu(match matcherFunc, dishes []Dish, allergies, dietaryRestrictions []string) []DishScan {
	results := make([]DishScan, 0, len(dishes))
	for _, d := range dishes {
		results = append(results, scanDish(match, d, allergies, dietaryRestrictions))
	}
	return results
}

func scanDish(match matcherFunc, d Dish, allergies, dietaryRestrictions []string) (result DishScan) {
	defer func() {
		if recover() != nil {
			result = emptyScan(d)
		}
	}()

	result = emptyScan(d)
	seen := make(map[string]struct{})
	for _, ingredient := range d.Ingredients {
		if !match(ingredient, allergies, dietaryRestrictions) {
			continue
		}
		result.FlaggedIngredients = append(result.FlaggedIngredients, ingredient)
		for _, id := range MatchedRestrictions(ingredient, allergies, dietaryRestrictions) {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				result.Restrictions = append(result.Restrictions, id)
			}
		}
	}
	result.IsFlagged = len(result.FlaggedIngredients) > 0
	return result
}

func emptyScan(d Dish) DishScan {
	return DishScan{
		Dish:               d,
		FlaggedIngredients: []string{},
		Restrictions:       []string{},
	}
}

// Summarize counts flagged dishes overall and per restriction.
func Summarize(results []DishScan) Summary {
	summary := Summary{
		TotalDishes:     len(results),
		RestrictionHits: make(map[string]int),
	}
	for _, r := range results {
		if !r.IsFlagged {
			continue
		}
		summary.FlaggedDishes++
		for _, id := range r.Restrictions {
			summary.RestrictionHits[id]++
		}
	}
	return summary
}
