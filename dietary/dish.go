package dietary

import "encoding/json"

// Dish is one menu entry as produced by a scrape or an LLM extraction.
// Price and Calories are passed through untouched.
type Dish struct {
	Name        string          `json:"dish"`
	Ingredients Ingredients     `json:"ingredients"`
	Price       json.RawMessage `json:"price,omitempty"`
	Calories    json.RawMessage `json:"calories,omitempty"`
}

// UnmarshalJSON never fails. A value that is not an object decodes to an
// empty dish, and a non-string name decodes to "".
func (d *Dish) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		*d = Dish{}
		return nil
	}

	var out Dish
	if raw, ok := fields["dish"]; ok {
		var name string
		if json.Unmarshal(raw, &name) == nil {
			out.Name = name
		}
	}
	if raw, ok := fields["ingredients"]; ok {
		out.Ingredients.UnmarshalJSON(raw)
	}
	out.Price = fields["price"]
	out.Calories = fields["calories"]
	*d = out
	return nil
}

// Ingredients is a list of free-text ingredient strings.
//
// Menu sources are unreliable, so decoding never fails: a JSON array keeps
// its string elements and drops everything else, and any non-array value
// decodes to an empty list.
type Ingredients []string

func (in *Ingredients) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*in = Ingredients{}
		return nil
	}
	list := make(Ingredients, 0, len(raw))
	for _, elem := range raw {
		var s *string
		if err := json.Unmarshal(elem, &s); err == nil && s != nil {
			list = append(list, *s)
		}
	}
	*in = list
	return nil
}

func (in Ingredients) MarshalJSON() ([]byte, error) {
	if in == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(in))
}
