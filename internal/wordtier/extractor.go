// Package wordtier implements the Tier-2 Word-Geometry Extractor: the
// intellectual core of the pipeline. Where the table tier (§4.C) leans on
// Poppler's own table detection, this tier rebuilds column structure from
// raw word positions, which is what most Singapore bank statements
// actually require.
package wordtier

import (
	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/pdfaccess"
)

// MinViableTransactions is the §4.D.7 abandonment threshold: fewer
// transactions than this across the whole document falls through to
// Tier 3.
const MinViableTransactions = 3

// Extractor runs the Tier-2 word-geometry pass over a whole document.
type Extractor struct {
	Logger logging.Logger
}

// NewExtractor builds an Extractor.
func NewExtractor(logger logging.Logger) *Extractor {
	return &Extractor{Logger: logger}
}

// Extract implements the §4.D contract: PDF handle plus bank identifier
// in, a sequence of transactions out. An empty result means the caller
// should fall through to Tier 3.
func (e *Extractor) Extract(doc pdfaccess.Access, bank string) ([]models.Transaction, error) {
	count, err := doc.PageCount()
	if err != nil {
		return nil, err
	}

	var lastLayout models.ColumnLayout
	haveLayout := false
	currency := ""
	section := 0
	var all []models.Transaction

	for page := 1; page <= count; page++ {
		words, err := doc.PageWords(page)
		if err != nil {
			return nil, err
		}
		if len(words) == 0 {
			continue
		}

		if layout, ok := DiscoverColumnLayout(words); ok {
			lastLayout = layout
			haveLayout = true
		} else if !haveLayout {
			// No header discovered yet on any page; nothing to assign
			// against.
			continue
		}

		if pageText, err := doc.PageText(page); err == nil {
			if code, ok := currencyLineIn(pageText); ok {
				currency = code
			}
		}

		rows := AssignRows(words, lastLayout)
		for i := range rows {
			for col, text := range rows[i].Cells {
				rows[i].Cells[col] = stripBankNoise(text, bank)
			}
		}

		txns, nextSection := AssembleRows(rows, page, currency, section)
		section = nextSection
		all = append(all, txns...)
	}

	if len(all) < MinViableTransactions {
		e.Logger.WithField("bank", bank).Debug("tier-2 abandoned: fewer than the minimum viable transactions")
		return nil, nil
	}

	return ReorderIfReversed(all), nil
}
