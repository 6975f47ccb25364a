package service

import (
	"fmt"

	"nobel-stats/app/models"
)

var detailColumns = []string{"ID", "Full Name", "Date Awarded", "Category", "Details"}

// FilterLaureates returns, in dataset order, the laureates born in country
// (UnknownCountry matches laureates without one) holding at least one prize
// in category. The dataset is not modified.
func FilterLaureates(ds *models.LaureateDataset, country, category string) []models.Laureate {
	if ds == nil {
		return nil
	}

	var out []models.Laureate
	for _, l := range ds.Laureates {
		if l.Country() != country {
			continue
		}
		if _, ok := l.FirstPrize(category); ok {
			out = append(out, l)
		}
	}
	return out
}

// BuildDetailTable renders the filtered laureates as table rows. Year and
// category come from the laureate's first prize in the requested category.
func BuildDetailTable(ds *models.LaureateDataset, country, category string) models.DetailTable {
	table := models.DetailTable{
		Caption:  fmt.Sprintf("Nobel laureates in %s from %s", category, country),
		Country:  country,
		Category: category,
		Columns:  append([]string(nil), detailColumns...),
		Rows:     []models.DetailRow{},
	}

	for _, l := range FilterLaureates(ds, country, category) {
		prize, _ := l.FirstPrize(category)
		table.Rows = append(table.Rows, models.DetailRow{
			Kind: models.LaureateRowKind,
			Laureate: &models.LaureateRow{
				ID:       l.ID,
				FullName: l.FullName(),
				Year:     prize.Year,
				Category: prize.Category,
			},
		})
	}
	return table
}
