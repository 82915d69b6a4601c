package dietary

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRestricted(t *testing.T) {
	tests := []struct {
		name       string
		ingredient string
		allergies  []string
		diets      []string
		want       bool
	}{
		{name: "no restrictions", ingredient: "peanut butter", want: false},
		{name: "no restrictions empty slices", ingredient: "shrimp", allergies: []string{}, diets: []string{}, want: false},
		{name: "salmon for vegetarian", ingredient: "Grilled Salmon", diets: []string{"Vegetarian"}, want: true},
		{name: "eggplant is not egg", ingredient: "Eggplant Parmesan", allergies: []string{"Eggs"}, want: false},
		{name: "roasted eggplant for vegan", ingredient: "roasted eggplant", diets: []string{"Vegan"}, want: false},
		{name: "whole word egg", ingredient: "fried egg", allergies: []string{"Eggs"}, want: true},
		{name: "selfish is not fish", ingredient: "selfish sauce", allergies: []string{"Fish"}, want: false},
		{name: "cheese for vegetarian", ingredient: "cheese", diets: []string{"Vegetarian"}, want: false},
		{name: "cheese for vegan", ingredient: "cheese", diets: []string{"Vegan"}, want: true},
		{name: "extra whitespace in phrase", ingredient: "creamy peanut  butter sauce", allergies: []string{"Peanuts"}, want: true},
		{name: "upper case ingredient", ingredient: "MILK CHOCOLATE", diets: []string{"Dairy-Free"}, want: true},
		{name: "unknown restriction", ingredient: "shrimp", diets: []string{"Keto"}, want: false},
		{name: "unknown then known", ingredient: "shrimp", allergies: []string{"Keto"}, diets: []string{"Vegetarian"}, want: true},
		{name: "duplicates", ingredient: "walnut salad", allergies: []string{"Tree Nuts", "Tree Nuts"}, want: true},
		{name: "identifier is case sensitive", ingredient: "milk", allergies: []string{"milk"}, want: false},
		{name: "mayo not vegetarian keyword", ingredient: "mayo", diets: []string{"Vegetarian"}, want: false},
		{name: "gluten free bread", ingredient: "sourdough bread", diets: []string{"Gluten-Free"}, want: true},
		{name: "punctuation boundary", ingredient: "bacon-wrapped dates", diets: []string{"Vegetarian"}, want: true},
		{name: "empty ingredient", ingredient: "", allergies: []string{"Milk"}, want: false},
		{name: "non-breaking space in phrase", ingredient: "toasted pine\u00a0nuts", allergies: []string{"Tree Nuts"}, want: true},
		{name: "non-breaking space brazil nut", ingredient: "brazil\u00a0nut", allergies: []string{"Tree Nuts"}, want: true},
		{name: "vertical tab in phrase", ingredient: "pine\vnuts", allergies: []string{"Tree Nuts"}, want: true},
		{name: "byte order mark in phrase", ingredient: "pine\ufeffnuts", allergies: []string{"Tree Nuts"}, want: true},
		{name: "thin space in phrase", ingredient: "pine\u2009nuts pesto", allergies: []string{"Tree Nuts"}, want: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := IsRestricted(testCase.ingredient, testCase.allergies, testCase.diets)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestIsRestricted_AdditiveRestrictions(t *testing.T) {
	allergies := []string{"Milk"}
	diets := []string{"Vegetarian"}

	assert.True(t, IsRestricted("grilled chicken", allergies, diets))
	assert.True(t, IsRestricted("whipped cream", allergies, diets))
	assert.False(t, IsRestricted("lettuce", allergies, diets))
}

func TestMatchedRestrictions(t *testing.T) {
	got := MatchedRestrictions("shrimp and cheese", []string{"Shellfish", "Milk", "Shellfish"}, []string{"Vegan", "Keto"})
	assert.Equal(t, []string{"Shellfish", "Milk", "Vegan"}, got)

	assert.Nil(t, MatchedRestrictions("shrimp", nil, nil))
	assert.Empty(t, MatchedRestrictions("lettuce", []string{"Peanuts"}, nil))
}

func TestMatchedRestrictions_AgreesWithIsRestricted(t *testing.T) {
	ingredients := []string{"eggplant", "egg", "Peanut Butter", "tofu", "beer batter", "selfish", "rice"}
	restrictionSets := [][]string{nil, {"Eggs"}, {"Vegan", "Soy"}, {"Gluten-Free", "Fish"}, {"Unknown"}}

	for _, ingredient := range ingredients {
		for _, set := range restrictionSets {
			matched := MatchedRestrictions(ingredient, set, nil)
			assert.Equal(t, IsRestricted(ingredient, set, nil), len(matched) > 0, "%q with %v", ingredient, set)
		}
	}
}

func TestIsRestricted_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, IsRestricted("grilled chicken", nil, []string{"Vegetarian"}))
				assert.False(t, IsRestricted("eggplant", []string{"Eggs"}, nil))
			}
		}()
	}
	wg.Wait()
}
