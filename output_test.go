package amati_test

import (
	"testing"

	"github.com/fwojciec/amati"
	"github.com/fwojciec/amati/mock"
	"github.com/stretchr/testify/assert"
)

func TestOutputForm(t *testing.T) {
	t.Parallel()
	content := []byte("a,b\n")
	f := amati.NewOutputForm(amati.FormatCSV, content)
	content[0] = 'x'

	assert.Equal(t, amati.FormatCSV, f.Format())
	assert.Equal(t, "a,b\n", f.String())

	b := f.Bytes()
	b[0] = 'y'
	assert.Equal(t, "a,b\n", f.String(), "Bytes returns a copy")
}

// tagged returns a strategy whose rendering is its tag.
func tagged(tag string) *mock.OutputFormFactory {
	return &mock.OutputFormFactory{
		RenderViewFn: func(amati.TabularModel) (amati.OutputForm, error) {
			return amati.NewOutputForm(amati.FormatTXT, []byte(tag)), nil
		},
	}
}

func render(t *testing.T, f amati.OutputFormFactory) string {
	t.Helper()
	form, err := f.RenderView(amati.TabularModel{})
	if err != nil {
		t.Fatal(err)
	}
	return form.String()
}

func TestForms_Select(t *testing.T) {
	t.Parallel()
	forms := amati.NewForms(tagged("text"), map[amati.OutputFormat]amati.OutputFormFactory{
		amati.FormatCSV: tagged("csv"),
		amati.FormatTXT: tagged("ignored"),
	})

	assert.Equal(t, "text", render(t, forms.Select(amati.FormatTXT)))
	assert.Equal(t, "csv", render(t, forms.Select(amati.FormatCSV)))
	assert.Equal(t, "text", render(t, forms.Select(amati.FormatXLSX)), "unregistered format falls back to text")
}

func TestForms_SelectName(t *testing.T) {
	t.Parallel()
	forms := amati.NewForms(tagged("text"), map[amati.OutputFormat]amati.OutputFormFactory{
		amati.FormatCSV: tagged("csv"),
	})

	assert.Equal(t, "csv", render(t, forms.SelectName("csv")))
	assert.Equal(t, "text", render(t, forms.SelectName("TEXT")))
	assert.Equal(t, "text", render(t, forms.SelectName("pdf")))
	assert.Equal(t, "text", render(t, forms.SelectName("")))
}
