package models

// LaureateQuery selects the laureates of one country in one category.
type LaureateQuery struct {
	Country  string `query:"country" validate:"required"`
	Category string `query:"category" validate:"required"`
	Laureate string `query:"laureate"`
}

type BiographyQuery struct {
	Category string `query:"category" validate:"required"`
}
