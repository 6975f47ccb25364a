package service

import (
	"errors"

	"nobel-stats/app/models"
)

// ErrDataUnavailable is returned when aggregation is attempted before both
// datasets are loaded, or with a laureate document lacking its list.
var ErrDataUnavailable = errors.New("laureate data not loaded or invalid")

// Aggregate counts, per prize category, the laureates born in each country.
// Laureates without a known birth country are skipped. A laureate listed
// twice on one prize is counted twice; shares are ignored.
func Aggregate(prizes *models.PrizeDataset, laureates *models.LaureateDataset) (*models.CountryTable, error) {
	if !laureates.Valid() || prizes == nil {
		return nil, ErrDataUnavailable
	}

	bornIn := make(map[string]string, len(laureates.Laureates))
	for _, l := range laureates.Laureates {
		if l.BornCountry != "" {
			bornIn[l.ID] = l.BornCountry
		}
	}

	table := models.NewCountryTable()
	for _, prize := range prizes.Prizes {
		for _, ref := range prize.Laureates {
			country, ok := bornIn[ref.ID]
			if !ok || country == models.UnknownCountry {
				continue
			}
			table.Increment(prize.Category, country)
		}
	}
	return table, nil
}
