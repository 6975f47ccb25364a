package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"text/tabwriter"

	"nobel-stats/app/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is everything the index template needs. Detail is nil until a
// country has been selected.
type Page struct {
	Ready  bool
	Grid   models.CountryGrid
	Detail *models.DetailTable
}

type Renderer struct {
	index *template.Template
}

func NewRenderer() (*Renderer, error) {
	index, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{index: index}, nil
}

func (r *Renderer) Page(w io.Writer, page Page) error {
	return r.index.Execute(w, page)
}

// WriteText prints the grid as plain text columns, one category at a time.
func WriteText(w io.Writer, grid models.CountryGrid) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, block := range grid.Blocks() {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", block.Title)
		fmt.Fprintf(tw, "Country\tCount\n")
		for _, row := range block.Rows {
			fmt.Fprintf(tw, "%s\t%d\n", row.Label, row.Count)
		}
	}
	return tw.Flush()
}
