package models

import "encoding/json"

type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// CategoryCounts holds per-country counts for one category, in the order
// countries were first counted.
type CategoryCounts struct {
	Category  string         `json:"category"`
	Countries []CountryCount `json:"countries"`
}

// CountryTable maps category -> country -> count. Both levels keep
// insertion order so that ties can be resolved by first appearance.
type CountryTable struct {
	categories []CategoryCounts
	index      map[string]int
	countries  []map[string]int
}

func NewCountryTable() *CountryTable {
	return &CountryTable{index: make(map[string]int)}
}

// Increment adds one to the (category, country) counter, creating the
// category and country entries on first use.
func (t *CountryTable) Increment(category, country string) {
	ci, ok := t.index[category]
	if !ok {
		ci = len(t.categories)
		t.index[category] = ci
		t.categories = append(t.categories, CategoryCounts{Category: category})
		t.countries = append(t.countries, make(map[string]int))
	}

	cc := &t.categories[ci]
	pos, ok := t.countries[ci][country]
	if !ok {
		pos = len(cc.Countries)
		t.countries[ci][country] = pos
		cc.Countries = append(cc.Countries, CountryCount{Country: country})
	}
	cc.Countries[pos].Count++
}

func (t *CountryTable) Count(category, country string) int {
	ci, ok := t.index[category]
	if !ok {
		return 0
	}
	pos, ok := t.countries[ci][country]
	if !ok {
		return 0
	}
	return t.categories[ci].Countries[pos].Count
}

// Total sums the counts of every country in a category.
func (t *CountryTable) Total(category string) int {
	c, ok := t.Category(category)
	if !ok {
		return 0
	}
	total := 0
	for _, cc := range c.Countries {
		total += cc.Count
	}
	return total
}

// Category returns a copy of one category's counts.
func (t *CountryTable) Category(category string) (CategoryCounts, bool) {
	ci, ok := t.index[category]
	if !ok {
		return CategoryCounts{}, false
	}
	return t.categories[ci].clone(), true
}

// Categories returns copies of all categories in insertion order.
func (t *CountryTable) Categories() []CategoryCounts {
	out := make([]CategoryCounts, 0, len(t.categories))
	for _, c := range t.categories {
		out = append(out, c.clone())
	}
	return out
}

func (t *CountryTable) Len() int { return len(t.categories) }

func (t *CountryTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Categories())
}

func (c CategoryCounts) clone() CategoryCounts {
	countries := make([]CountryCount, len(c.Countries))
	copy(countries, c.Countries)
	return CategoryCounts{Category: c.Category, Countries: countries}
}
