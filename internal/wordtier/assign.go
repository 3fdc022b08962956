package wordtier

import (
	"sort"
	"strings"

	"ledgerlens/extractcore/internal/models"
)

// Row is one y-band's words, already assigned to columns and joined into
// per-column text (§4.D.2). Words with no matching column interval are
// discarded silently, as specified.
type Row struct {
	Top, Bottom float64
	Cells       map[string]string
}

// AssignRows groups words below a layout's header span into y-bands and
// assigns each word to the column whose interval contains its x-midpoint.
func AssignRows(words []models.Word, layout models.ColumnLayout) []Row {
	var below []models.Word
	for _, w := range words {
		if w.Top > layout.YMax {
			below = append(below, w)
		}
	}

	bands := groupIntoBands(below)
	rows := make([]Row, 0, len(bands))

	for _, band := range bands {
		byColumn := map[string][]models.Word{}
		for _, w := range band.Words {
			col, ok := layout.ColumnAt(w.XMid())
			if !ok {
				continue
			}
			byColumn[col] = append(byColumn[col], w)
		}

		cells := map[string]string{}
		for col, ws := range byColumn {
			sort.SliceStable(ws, func(i, j int) bool { return ws[i].X0 < ws[j].X0 })
			var parts []string
			for _, w := range ws {
				parts = append(parts, w.Text)
			}
			cells[col] = strings.Join(parts, " ")
		}

		rows = append(rows, Row{Top: band.Top, Bottom: band.Bottom, Cells: cells})
	}

	return rows
}
