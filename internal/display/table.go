package display

import (
	"strings"
)

// rowStyle selects how a data row is painted.
type rowStyle int

const (
	rowPlain rowStyle = iota
	rowDim
	rowAccent
	rowMagenta
)

// Table renders an aligned text table. Rows can be individually styled:
// the next prayer gets the accent, passed prayers are dimmed, Ramadan
// rows are magenta.
type Table struct {
	headers []string
	rows    [][]string
	styles  []rowStyle
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a plain row.
func (t *Table) AddRow(values ...string) {
	t.addStyled(rowPlain, values)
}

// AddDimRow appends a dimmed row.
func (t *Table) AddDimRow(values ...string) {
	t.addStyled(rowDim, values)
}

// AddAccentRow appends a highlighted row.
func (t *Table) AddAccentRow(values ...string) {
	t.addStyled(rowAccent, values)
}

// AddMagentaRow appends a magenta row.
func (t *Table) AddMagentaRow(values ...string) {
	t.addStyled(rowMagenta, values)
}

func (t *Table) addStyled(s rowStyle, values []string) {
	t.rows = append(t.rows, values)
	t.styles = append(t.styles, s)
}

// Render produces the formatted table string with leading indent.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len([]rune(cell)) > widths[i] {
				widths[i] = len([]rune(cell))
			}
		}
	}

	var sb strings.Builder

	sb.WriteString("  " + Bold(formatRow(t.headers, widths)) + "\n")

	sepParts := make([]string, len(widths))
	for i, w := range widths {
		sepParts[i] = strings.Repeat("─", w)
	}
	sb.WriteString(Dim("  "+strings.Join(sepParts, "  ")) + "\n")

	for i, row := range t.rows {
		line := formatRow(row, widths)
		switch t.styles[i] {
		case rowDim:
			line = Dim(line)
		case rowAccent:
			line = Accent(line)
		case rowMagenta:
			line = Magenta(line)
		}
		sb.WriteString("  " + line + "\n")
	}

	return sb.String()
}

// formatRow pads cells to the column widths. Width accounting is in runes
// so Turkish prayer names line up.
func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - len([]rune(cell))
		if pad < 0 {
			pad = 0
		}
		parts[i] = cell + strings.Repeat(" ", pad)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
