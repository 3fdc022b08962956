package wordtier

import (
	"regexp"
	"sort"
	"strings"

	"ledgerlens/extractcore/internal/models"
)

// YBandTolerance is the vertical distance within which two words are
// considered part of the same reading line (§4.D.1 step 1).
const YBandTolerance = 4.0

// HeaderMergeSpan is the maximum vertical span a multi-line header
// candidate may occupy (§4.D.1 step 2), e.g. "Balance\n(SGD)".
const HeaderMergeSpan = 16.0

// ColumnMargin is the sentinel edge width column intervals extend to at
// the page boundary, standing in for "extend to page margins" without a
// page-width value on hand.
const ColumnMargin = 1_000_000.0

var nonASCIIRe = regexp.MustCompile(`[^\x00-\x7F]+`)

type yBand struct {
	Words      []models.Word
	Top, Bottom float64
}

// groupIntoBands sorts words top-to-bottom and clusters them into y-bands
// using a fixed tolerance.
func groupIntoBands(words []models.Word) []yBand {
	sorted := make([]models.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Top < sorted[j].Top })

	var bands []yBand
	for _, w := range sorted {
		if len(bands) > 0 {
			last := &bands[len(bands)-1]
			if w.Top-last.Top <= YBandTolerance {
				last.Words = append(last.Words, w)
				if w.Bottom > last.Bottom {
					last.Bottom = w.Bottom
				}
				continue
			}
		}
		bands = append(bands, yBand{Words: []models.Word{w}, Top: w.Top, Bottom: w.Bottom})
	}
	return bands
}

type headerCell struct {
	Name   string
	X0, X1 float64
}

// matchHeaderWords greedily matches the longest alias-recognized phrase
// starting at each position, left to right.
func matchHeaderWords(words []models.Word) []headerCell {
	sorted := make([]models.Word, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X0 < sorted[j].X0 })

	var cells []headerCell
	for i := 0; i < len(sorted); {
		matched := false
		for n := 3; n >= 1 && i+n <= len(sorted); n-- {
			var parts []string
			for _, w := range sorted[i : i+n] {
				parts = append(parts, w.Text)
			}
			phrase := canonicalHeaderPhrase(strings.Join(parts, " "))
			if canon, ok := wordAliasMap[phrase]; ok {
				cells = append(cells, headerCell{Name: canon, X0: sorted[i].X0, X1: sorted[i+n-1].X1})
				i += n
				matched = true
				break
			}
		}
		if !matched {
			i++
		}
	}
	return cells
}

func canonicalHeaderPhrase(s string) string {
	stripped := nonASCIIRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// scoreHeaderCandidate returns the recognized cells and whether the
// candidate is valid: at least one amount alias and a balance alias
// (§4.D.1 step 3).
func scoreHeaderCandidate(words []models.Word) ([]headerCell, bool) {
	cells := matchHeaderWords(words)
	hasAmount, hasBalance := false, false
	for _, c := range cells {
		if amountColumns[c.Name] {
			hasAmount = true
		}
		if balanceColumns[c.Name] {
			hasBalance = true
		}
	}
	return cells, hasAmount && hasBalance
}

// DiscoverColumnLayout implements §4.D.1: find the highest-scoring valid
// header candidate on a page and compute its column intervals. Returns
// false if no valid candidate exists on this page.
func DiscoverColumnLayout(words []models.Word) (models.ColumnLayout, bool) {
	bands := groupIntoBands(words)

	type candidate struct {
		cells    []headerCell
		top, bot float64
	}
	var best *candidate
	bestScore := -1

	tryCandidate := func(bandIdx, span int) {
		if bandIdx+span > len(bands) {
			return
		}
		group := bands[bandIdx : bandIdx+span]
		if group[len(group)-1].Bottom-group[0].Top > HeaderMergeSpan {
			return
		}
		var words []models.Word
		for _, b := range group {
			words = append(words, b.Words...)
		}
		cells, valid := scoreHeaderCandidate(words)
		if !valid {
			return
		}
		if len(cells) > bestScore {
			bestScore = len(cells)
			best = &candidate{cells: cells, top: group[0].Top, bot: group[len(group)-1].Bottom}
		}
	}

	for i := range bands {
		tryCandidate(i, 1)
		tryCandidate(i, 2)
	}

	if best == nil {
		return models.ColumnLayout{}, false
	}

	return buildColumnLayout(best.cells, best.top, best.bot), true
}

func buildColumnLayout(cells []headerCell, top, bottom float64) models.ColumnLayout {
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].X0 < cells[j].X0 })

	columns := map[string]models.ColumnInterval{}
	for i, cell := range cells {
		left := -ColumnMargin
		if i > 0 {
			left = (cells[i-1].X1 + cell.X0) / 2
		}
		right := ColumnMargin
		if i < len(cells)-1 {
			right = (cell.X1 + cells[i+1].X0) / 2
		}
		columns[cell.Name] = models.ColumnInterval{X0: left, X1: right}
	}

	return models.ColumnLayout{Columns: columns, YMin: top, YMax: bottom}
}
