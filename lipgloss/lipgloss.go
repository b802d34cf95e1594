// Package lipgloss renders tabular models as bordered text tables for
// terminal display, using lipgloss for layout and styling.
package lipgloss

import (
	"fmt"
	"strconv"
	"strings"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/amati"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Interface compliance check.
var _ amati.OutputFormFactory = (*TextFactory)(nil)

// Border names accepted by Options.Border.
const (
	BorderASCII    = "ascii"
	BorderNormal   = "normal"
	BorderRounded  = "rounded"
	BorderMarkdown = "markdown"
)

// Borders returns the accepted border names.
func Borders() []string {
	return []string{BorderASCII, BorderNormal, BorderRounded, BorderMarkdown}
}

// Options configures a TextFactory.
type Options struct {
	Border       string       // one of Borders(); empty = BorderASCII
	MaxCellWidth int          // truncate longer cells with an ellipsis; 0 = unlimited
	Theme        *amati.Theme // nil = no colors
}

// TextFactory renders a model as a title, an underline rule and a table.
type TextFactory struct {
	border   lg.Border
	markdown bool
	maxWidth int
	styles   styles
}

type styles struct {
	title  lg.Style
	header lg.Style
	cell   lg.Style
	border lg.Style
}

// NewTextFactory creates a TextFactory. It rejects unknown border names and
// negative widths.
func NewTextFactory(opts Options) (*TextFactory, error) {
	f := &TextFactory{maxWidth: opts.MaxCellWidth}
	switch strings.ToLower(opts.Border) {
	case "", BorderASCII:
		f.border = lg.ASCIIBorder()
	case BorderNormal:
		f.border = lg.NormalBorder()
	case BorderRounded:
		f.border = lg.RoundedBorder()
	case BorderMarkdown:
		f.border = lg.MarkdownBorder()
		f.markdown = true
	default:
		return nil, fmt.Errorf("unknown border %q: %w", opts.Border, amati.ErrValidation)
	}
	if opts.MaxCellWidth < 0 {
		return nil, fmt.Errorf("max cell width must be non-negative, got %d: %w", opts.MaxCellWidth, amati.ErrValidation)
	}
	theme := amati.PlainTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	f.styles = newStyles(theme)
	return f, nil
}

func newStyles(t amati.Theme) styles {
	cell := lg.NewStyle().Padding(0, 1)
	return styles{
		title:  lg.NewStyle().Foreground(ansiColor(t.Title)).Bold(t.Title >= 0),
		header: cell.Foreground(ansiColor(t.Header)).Bold(t.Header >= 0),
		cell:   cell,
		border: lg.NewStyle().Foreground(ansiColor(t.Border)),
	}
}

func ansiColor(index int) lg.TerminalColor {
	if index < 0 {
		return lg.NoColor{}
	}
	return lg.Color(strconv.Itoa(index))
}

// RenderView renders m as a text table section.
func (f *TextFactory) RenderView(m amati.TabularModel) (amati.OutputForm, error) {
	if err := m.Validate(); err != nil {
		return amati.OutputForm{}, err
	}
	rows := make([][]string, len(m.Rows))
	for i, row := range m.Rows {
		rows[i] = f.truncate(row)
	}
	t := table.New().
		Border(f.border).
		BorderStyle(f.styles.border).
		StyleFunc(func(row, _ int) lg.Style {
			if row == table.HeaderRow {
				return f.styles.header
			}
			return f.styles.cell
		}).
		Headers(f.truncate(m.Columns)...).
		Rows(rows...)
	if f.markdown {
		t = t.BorderTop(false).BorderBottom(false)
	}

	var b strings.Builder
	b.WriteString(f.styles.title.Render(m.Title))
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", uniseg.StringWidth(m.Title)))
	b.WriteByte('\n')
	b.WriteString(t.String())
	b.WriteByte('\n')
	return amati.NewOutputForm(amati.FormatTXT, []byte(b.String())), nil
}

func (f *TextFactory) truncate(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if f.maxWidth > 0 {
			c = runewidth.Truncate(c, f.maxWidth, "…")
		}
		out[i] = c
	}
	return out
}
