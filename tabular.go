package amati

import "fmt"

// TabularModel is the format-independent result of an analytic: named
// columns and rows of string cells aligned to them.
type TabularModel struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// NewTabularModel copies its inputs into a model, rejecting any row whose
// width differs from the number of columns.
func NewTabularModel(title string, columns []string, rows [][]string) (TabularModel, error) {
	m := TabularModel{
		Title:   title,
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, len(rows)),
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return TabularModel{}, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				title, i, len(row), len(columns), ErrValidation)
		}
		m.Rows[i] = append([]string(nil), row...)
	}
	return m, nil
}

// Validate checks that every row is as wide as the column list.
func (m TabularModel) Validate() error {
	for i, row := range m.Rows {
		if len(row) != len(m.Columns) {
			return fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				m.Title, i, len(row), len(m.Columns), ErrValidation)
		}
	}
	return nil
}
