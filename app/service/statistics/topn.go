package service

import (
	"cmp"
	"slices"

	"nobel-stats/app/models"
	"nobel-stats/utils"
)

const (
	DefaultTopN  = 5
	blocksPerRow = 2
)

// CategoryTop is the ranked head of one category.
type CategoryTop struct {
	Category  string                `json:"category"`
	Countries []models.CountryCount `json:"countries"`
}

// TopCountries ranks the countries of every category by count, highest
// first, and keeps at most n of them. Equal counts keep the order in which
// the countries were first counted. n <= 0 means DefaultTopN.
func TopCountries(table *models.CountryTable, n int) []CategoryTop {
	if n <= 0 {
		n = DefaultTopN
	}
	if table == nil {
		return nil
	}

	categories := table.Categories()
	out := make([]CategoryTop, 0, len(categories))
	for _, c := range categories {
		ranked := c.Countries
		slices.SortStableFunc(ranked, func(a, b models.CountryCount) int {
			return cmp.Compare(b.Count, a.Count)
		})
		if len(ranked) > n {
			ranked = ranked[:n]
		}
		out = append(out, CategoryTop{Category: c.Category, Countries: ranked})
	}
	return out
}

// BuildCountryGrid lays the top countries out as category blocks, two per row.
func BuildCountryGrid(table *models.CountryTable, n int) models.CountryGrid {
	grid := models.CountryGrid{Rows: []models.CategoryPair{}}

	for i, top := range TopCountries(table, n) {
		if i%blocksPerRow == 0 {
			grid.Rows = append(grid.Rows, models.CategoryPair{})
		}

		block := models.CategoryBlock{
			Category: top.Category,
			Title:    utils.Capitalize(top.Category),
			Rows:     make([]models.CountryRow, 0, len(top.Countries)),
		}
		for _, cc := range top.Countries {
			block.Rows = append(block.Rows, models.CountryRow{
				Country: cc.Country,
				Label:   countryLabel(cc.Country),
				Count:   cc.Count,
			})
		}

		last := &grid.Rows[len(grid.Rows)-1]
		last.Blocks = append(last.Blocks, block)
	}
	return grid
}

func countryLabel(country string) string {
	if country == models.UnknownCountry {
		return models.UnknownCountryLabel
	}
	return country
}
