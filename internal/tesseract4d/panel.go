package tesseract4d

import (
	"fmt"
	"strings"
)

// PanelRow is one line of the control panel. Separator rows carry no property.
type PanelRow struct {
	Property
	Value     Real
	Separator bool
}

// Panel returns the control rows for object id, or false when id is not a tesseract.
// The W controls come first, then a separator, then the three rotations.
func Panel(r *Registry, id string) ([]PanelRow, bool) {
	s, err := r.Store(id)
	if err != nil {
		return nil, false
	}
	p := s.Params()
	rows := make([]PanelRow, 0, len(Properties)+1)
	for i, prop := range Properties {
		if i == 2 {
			rows = append(rows, PanelRow{Separator: true})
		}
		v, _ := p.Get(prop.Name)
		rows = append(rows, PanelRow{Property: prop, Value: v})
	}
	return rows, true
}

// FormatPanel renders rows as plain text, one control per line.
func FormatPanel(title string, rows []PanelRow) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	for _, row := range rows {
		if row.Separator {
			b.WriteByte('\n')
			continue
		}
		fmt.Fprintf(&b, "%-8s %8.3f\n", row.Label+":", row.Value)
	}
	return b.String()
}
