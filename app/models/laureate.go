package models

import "strings"

const (
	// UnknownCountry is substituted for laureates without a birth country.
	UnknownCountry = "Unknown"
	// UnknownCountryLabel is what gets displayed instead of UnknownCountry.
	UnknownCountryLabel = "Unknown Country"
)

// LaureateDataset is the top-level laureate document (laureate.json).
// A nil Laureates slice means the document was missing or malformed.
type LaureateDataset struct {
	Laureates []Laureate `json:"laureates" bson:"laureates"`
}

type Laureate struct {
	ID              string          `json:"id" bson:"id"`
	Firstname       string          `json:"firstname" bson:"firstname"`
	Surname         string          `json:"surname,omitempty" bson:"surname,omitempty"`
	Born            string          `json:"born,omitempty" bson:"born,omitempty"`
	Died            string          `json:"died,omitempty" bson:"died,omitempty"`
	BornCountry     string          `json:"bornCountry,omitempty" bson:"bornCountry,omitempty"`
	BornCountryCode string          `json:"bornCountryCode,omitempty" bson:"bornCountryCode,omitempty"`
	BornCity        string          `json:"bornCity,omitempty" bson:"bornCity,omitempty"`
	Gender          string          `json:"gender,omitempty" bson:"gender,omitempty"`
	Prizes          []LaureatePrize `json:"prizes" bson:"prizes"`
}

type LaureatePrize struct {
	Year       string `json:"year" bson:"year"`
	Category   string `json:"category" bson:"category"`
	Share      string `json:"share,omitempty" bson:"share,omitempty"`
	Motivation string `json:"motivation,omitempty" bson:"motivation,omitempty"`
}

// FullName joins first name and surname; organisations have no surname.
func (l Laureate) FullName() string {
	return strings.TrimSpace(l.Firstname + " " + l.Surname)
}

// Country returns the birth country, or UnknownCountry when it is missing.
func (l Laureate) Country() string {
	if l.BornCountry == "" {
		return UnknownCountry
	}
	return l.BornCountry
}

// FirstPrize returns the first prize in the laureate's own order whose
// category matches exactly.
func (l Laureate) FirstPrize(category string) (LaureatePrize, bool) {
	for _, p := range l.Prizes {
		if p.Category == category {
			return p, true
		}
	}
	return LaureatePrize{}, false
}

// Find returns the laureate with the given id.
func (ds *LaureateDataset) Find(id string) (Laureate, bool) {
	if ds == nil {
		return Laureate{}, false
	}
	for _, l := range ds.Laureates {
		if l.ID == id {
			return l, true
		}
	}
	return Laureate{}, false
}

// Valid reports whether the dataset was loaded with a laureate list.
func (ds *LaureateDataset) Valid() bool {
	return ds != nil && ds.Laureates != nil
}
