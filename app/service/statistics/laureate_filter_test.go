package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nobel-stats/app/models"
	service "nobel-stats/app/service/statistics"
)

func ids(laureates []models.Laureate) []string {
	out := make([]string, 0, len(laureates))
	for _, l := range laureates {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterLaureates(t *testing.T) {
	ds := fixtureLaureates()

	t.Run("Success: dataset order is kept", func(t *testing.T) {
		assert.Equal(t, []string{"4", "5"}, ids(service.FilterLaureates(ds, "France", "physics")))
		assert.Equal(t, []string{"1", "10"}, ids(service.FilterLaureates(ds, "Germany", "physics")))
	})

	t.Run("Success: any matching prize qualifies", func(t *testing.T) {
		assert.Equal(t, []string{"100"}, ids(service.FilterLaureates(ds, "USA", "peace")))
		assert.Equal(t, []string{"6"}, ids(service.FilterLaureates(ds, "Russian Empire (now Poland)", "chemistry")))
	})

	t.Run("Success: laureates without country are reachable as Unknown", func(t *testing.T) {
		assert.Equal(t, []string{"482"}, ids(service.FilterLaureates(ds, models.UnknownCountry, "peace")))
	})

	t.Run("Success: no match", func(t *testing.T) {
		assert.Empty(t, service.FilterLaureates(ds, "Germany", "chemistry"))
		assert.Empty(t, service.FilterLaureates(ds, "germany", "physics"))
		assert.Empty(t, service.FilterLaureates(nil, "Germany", "physics"))
	})

	t.Run("Success: repeated filtering is stable and pure", func(t *testing.T) {
		before := fixtureLaureates()
		first := service.FilterLaureates(ds, "France", "physics")
		second := service.FilterLaureates(ds, "France", "physics")

		assert.Equal(t, first, second)
		assert.Equal(t, before, ds)
	})
}

func TestBuildDetailTable(t *testing.T) {
	ds := fixtureLaureates()

	t.Run("Success: caption columns and rows", func(t *testing.T) {
		table := service.BuildDetailTable(ds, "France", "physics")

		assert.Equal(t, "Nobel laureates in physics from France", table.Caption)
		assert.Equal(t, []string{"ID", "Full Name", "Date Awarded", "Category", "Details"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, models.LaureateRow{ID: "4", FullName: "Henri Becquerel", Year: "1903", Category: "physics"}, *table.Rows[0].Laureate)
		assert.Equal(t, models.LaureateRowKind, table.Rows[1].Kind)
	})

	t.Run("Success: year comes from the first prize in the category", func(t *testing.T) {
		table := service.BuildDetailTable(ds, "USA", "peace")
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "1962", table.Rows[0].Laureate.Year)
		assert.Equal(t, "peace", table.Rows[0].Laureate.Category)

		table = service.BuildDetailTable(ds, models.UnknownCountry, "peace")
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "1917", table.Rows[0].Laureate.Year)
		assert.Equal(t, "International Committee of the Red Cross", table.Rows[0].Laureate.FullName)
	})

	t.Run("Success: empty result still has a table", func(t *testing.T) {
		table := service.BuildDetailTable(ds, "Sweden", "literature")
		assert.NotNil(t, table.Rows)
		assert.Empty(t, table.Rows)
	})
}
