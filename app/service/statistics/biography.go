package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"nobel-stats/app/models"
	"nobel-stats/utils"
)

var ErrInvalidYear = errors.New("invalid year")

// unknownAge is shown when the birth year cannot be read.
const unknownAge = "unknown"

// CalculateAge subtracts the birth year from the award year. Month and day
// are ignored, so the result can exceed the exact age by one.
func CalculateAge(born, awardYear string) (int, error) {
	birth, err := leadingYear(born)
	if err != nil {
		return 0, fmt.Errorf("birth date %q: %w", born, err)
	}
	award, err := leadingYear(awardYear)
	if err != nil {
		return 0, fmt.Errorf("award year %q: %w", awardYear, err)
	}
	return award - birth, nil
}

// leadingYear reads the year of an ISO-like date ("1879-03-14",
// "1898-00-00", "1921").
func leadingYear(date string) (int, error) {
	year, _, _ := strings.Cut(strings.TrimSpace(date), "-")
	if len(year) != 4 {
		return 0, ErrInvalidYear
	}
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0, ErrInvalidYear
	}
	return n, nil
}

// Biography writes the one-sentence summary of the laureate's first prize in
// category. ok is false when the laureate or the prize does not exist.
func Biography(ds *models.LaureateDataset, id, category string) (bio models.Biography, ok bool) {
	laureate, found := ds.Find(id)
	if !found {
		return models.Biography{}, false
	}
	prize, found := laureate.FirstPrize(category)
	if !found {
		return models.Biography{}, false
	}

	bio = models.Biography{
		LaureateID: laureate.ID,
		Category:   prize.Category,
		Year:       prize.Year,
	}

	ageText := unknownAge
	if age, err := CalculateAge(laureate.Born, prize.Year); err == nil {
		bio.Age = &age
		ageText = strconv.Itoa(age)
	}

	bio.Text = fmt.Sprintf("In %s, at the age of %s, %s received a Nobel Prize in %s in recognition of %s.",
		prize.Year, ageText, laureate.FullName(), prize.Category, utils.StripQuotes(prize.Motivation))
	return bio, true
}

// ShowBiography inserts the laureate's biography under its row in table,
// replacing any biography already shown. Nothing is inserted, and the table
// is left untouched, when the laureate or prize is unknown; when only the row
// is missing the old biography is still removed.
func ShowBiography(ds *models.LaureateDataset, table *models.DetailTable, id, category string) bool {
	bio, ok := Biography(ds, id, category)
	if !ok {
		return false
	}
	return table.InsertBiography(id, category, models.BiographyRow{
		LaureateID: id,
		Text:       bio.Text,
		ColSpan:    len(table.Columns),
	})
}
