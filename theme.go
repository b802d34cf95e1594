package amati

// Theme defines semantic color mappings for text reports using ANSI color
// indices (0-15). The user's terminal theme determines the actual RGB
// values. A negative index means no color.
type Theme struct {
	Title  int // Section titles
	Header int // Column headers
	Border int // Table borders
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Title:  5,
		Header: 4,
		Border: 8,
	}
}

// PlainTheme returns a Theme with every color disabled.
func PlainTheme() Theme {
	return Theme{Title: -1, Header: -1, Border: -1}
}
