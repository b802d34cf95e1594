// Package csv renders tabular models as comma-separated values.
package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/fwojciec/amati"
)

// Interface compliance check.
var _ amati.OutputFormFactory = (*Factory)(nil)

// Factory renders one header record followed by one record per row. Fields
// containing a comma, a quote or a line break are quoted and embedded quotes
// doubled; records end with a single newline. Fields that start with
// whitespace and the literal field \. are quoted too.
type Factory struct{}

// NewFactory returns a CSV Factory.
func NewFactory() *Factory { return &Factory{} }

// RenderView renders m as CSV.
func (*Factory) RenderView(m amati.TabularModel) (amati.OutputForm, error) {
	if err := m.Validate(); err != nil {
		return amati.OutputForm{}, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(m.Columns); err != nil {
		return amati.OutputForm{}, fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(m.Rows); err != nil {
		return amati.OutputForm{}, fmt.Errorf("write rows: %w", err)
	}
	return amati.NewOutputForm(amati.FormatCSV, buf.Bytes()), nil
}
