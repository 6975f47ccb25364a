package models

// CountryGrid is the view-model of the top-countries overview: category
// blocks laid out two per row.
type CountryGrid struct {
	Rows []CategoryPair `json:"rows"`
}

type CategoryPair struct {
	Blocks []CategoryBlock `json:"blocks"`
}

type CategoryBlock struct {
	Category string       `json:"category"`
	Title    string       `json:"title"`
	Rows     []CountryRow `json:"rows"`
}

// CountryRow is one ranked country. Country is the raw value used to drill
// down, Label the text shown to the user.
type CountryRow struct {
	Country string `json:"country"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
}

// Blocks flattens the grid back into category order.
func (g CountryGrid) Blocks() []CategoryBlock {
	var out []CategoryBlock
	for _, r := range g.Rows {
		out = append(out, r.Blocks...)
	}
	return out
}

type DetailRowKind string

const (
	LaureateRowKind  DetailRowKind = "laureate"
	BiographyRowKind DetailRowKind = "biography"
)

// DetailTable is the view-model of the laureate drill-down table.
type DetailTable struct {
	Caption  string      `json:"caption"`
	Country  string      `json:"country"`
	Category string      `json:"category"`
	Columns  []string    `json:"columns"`
	Rows     []DetailRow `json:"rows"`
}

type DetailRow struct {
	Kind      DetailRowKind `json:"kind"`
	Laureate  *LaureateRow  `json:"laureate,omitempty"`
	Biography *BiographyRow `json:"biography,omitempty"`
}

type LaureateRow struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Year     string `json:"year"`
	Category string `json:"category"`
}

type BiographyRow struct {
	LaureateID string `json:"laureateId"`
	Text       string `json:"text"`
	ColSpan    int    `json:"colSpan"`
}

// Biography is the generated one-sentence summary of a laureate's prize.
type Biography struct {
	LaureateID string `json:"laureateId"`
	Category   string `json:"category"`
	Year       string `json:"year"`
	Age        *int   `json:"age"`
	Text       string `json:"text"`
}

// RemoveBiographies drops every biography row from the table.
func (t *DetailTable) RemoveBiographies() {
	rows := t.Rows[:0]
	for _, r := range t.Rows {
		if r.Kind != BiographyRowKind {
			rows = append(rows, r)
		}
	}
	t.Rows = rows
}

// InsertBiography places bio directly after the laureate row with the given
// id and category. Existing biography rows are removed first, so at most one
// is ever present. Returns false when no such laureate row exists.
func (t *DetailTable) InsertBiography(id, category string, bio BiographyRow) bool {
	t.RemoveBiographies()

	for i, r := range t.Rows {
		if r.Kind != LaureateRowKind || r.Laureate.ID != id || t.Category != category {
			continue
		}
		row := DetailRow{Kind: BiographyRowKind, Biography: &bio}
		t.Rows = append(t.Rows, DetailRow{})
		copy(t.Rows[i+2:], t.Rows[i+1:])
		t.Rows[i+1] = row
		return true
	}
	return false
}

// BiographyRows returns the biography rows currently in the table.
func (t *DetailTable) BiographyRows() []BiographyRow {
	var out []BiographyRow
	for _, r := range t.Rows {
		if r.Kind == BiographyRowKind {
			out = append(out, *r.Biography)
		}
	}
	return out
}
