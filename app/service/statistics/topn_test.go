package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nobel-stats/app/models"
	service "nobel-stats/app/service/statistics"
)

func TestTopCountries(t *testing.T) {
	t.Run("Success: at most n, descending, ties in first-seen order", func(t *testing.T) {
		table := models.NewCountryTable()
		counts := []struct {
			country string
			n       int
		}{
			{"Sweden", 1}, {"France", 3}, {"Norway", 1}, {"USA", 5},
			{"Germany", 3}, {"Italy", 1}, {"Japan", 2},
		}
		for _, c := range counts {
			for i := 0; i < c.n; i++ {
				table.Increment("physics", c.country)
			}
		}

		top := service.TopCountries(table, 5)
		require.Len(t, top, 1)
		assert.Equal(t, []models.CountryCount{
			{Country: "USA", Count: 5},
			{Country: "France", Count: 3},
			{Country: "Germany", Count: 3},
			{Country: "Japan", Count: 2},
			{Country: "Sweden", Count: 1},
		}, top[0].Countries)
	})

	t.Run("Success: fewer than n countries are all kept", func(t *testing.T) {
		table, err := service.Aggregate(fixturePrizes(), fixtureLaureates())
		require.NoError(t, err)

		top := service.TopCountries(table, 5)
		require.Len(t, top, 3)
		assert.Len(t, top[1].Countries, 3)
		assert.Len(t, top[2].Countries, 1)
	})

	t.Run("Success: zero n falls back to the default", func(t *testing.T) {
		table := models.NewCountryTable()
		for i := 0; i < 8; i++ {
			table.Increment("peace", fmt.Sprintf("Country %d", i))
		}
		top := service.TopCountries(table, 0)
		assert.Len(t, top[0].Countries, service.DefaultTopN)
	})

	t.Run("Success: ranking does not reorder the table", func(t *testing.T) {
		table := models.NewCountryTable()
		table.Increment("physics", "Sweden")
		table.Increment("physics", "USA")
		table.Increment("physics", "USA")

		service.TopCountries(table, 5)

		cat, _ := table.Category("physics")
		assert.Equal(t, "Sweden", cat.Countries[0].Country)
	})
}

func TestBuildCountryGrid(t *testing.T) {
	t.Run("Success: two categories per row with titles", func(t *testing.T) {
		table, err := service.Aggregate(fixturePrizes(), fixtureLaureates())
		require.NoError(t, err)

		grid := service.BuildCountryGrid(table, 5)
		require.Len(t, grid.Rows, 2)
		require.Len(t, grid.Rows[0].Blocks, 2)
		require.Len(t, grid.Rows[1].Blocks, 1)

		physics := grid.Rows[0].Blocks[0]
		assert.Equal(t, "Physics", physics.Title)
		assert.Equal(t, models.CountryRow{Country: "Germany", Label: "Germany", Count: 2}, physics.Rows[0])
		assert.Equal(t, "Peace", grid.Rows[1].Blocks[0].Title)
	})

	t.Run("Success: residual Unknown gets a friendly label", func(t *testing.T) {
		table := models.NewCountryTable()
		table.Increment("peace", models.UnknownCountry)

		grid := service.BuildCountryGrid(table, 5)
		row := grid.Rows[0].Blocks[0].Rows[0]
		assert.Equal(t, models.UnknownCountry, row.Country)
		assert.Equal(t, models.UnknownCountryLabel, row.Label)
	})

	t.Run("Success: empty table gives an empty grid", func(t *testing.T) {
		grid := service.BuildCountryGrid(models.NewCountryTable(), 5)
		assert.Empty(t, grid.Rows)
	})
}
