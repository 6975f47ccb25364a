package models

// PrizeDataset is the top-level prize document (prize.json).
type PrizeDataset struct {
	Prizes []Prize `json:"prizes" bson:"prizes"`
}

type Prize struct {
	Year              string          `json:"year" bson:"year"`
	Category          string          `json:"category" bson:"category"`
	OverallMotivation string          `json:"overallMotivation,omitempty" bson:"overallMotivation,omitempty"`
	Laureates         []PrizeLaureate `json:"laureates,omitempty" bson:"laureates,omitempty"`
}

// PrizeLaureate references a laureate from a prize record. Share is carried
// through from the source but never used for counting.
type PrizeLaureate struct {
	ID         string `json:"id" bson:"id"`
	Firstname  string `json:"firstname" bson:"firstname"`
	Surname    string `json:"surname,omitempty" bson:"surname,omitempty"`
	Motivation string `json:"motivation,omitempty" bson:"motivation,omitempty"`
	Share      string `json:"share,omitempty" bson:"share,omitempty"`
}
