// Package pdfaccess isolates every place this codebase touches a PDF file.
// Nothing outside this package shells out to an external tool or knows the
// name "poppler"; everything else works against the Access interface.
package pdfaccess

import (
	"ledgerlens/extractcore/internal/models"
)

// Access exposes the four read-only capabilities the extraction tiers are
// built on. A single implementation backs an open document for its whole
// lifetime; callers request pages by 1-based index.
type Access interface {
	// PageCount returns the number of pages in the document.
	PageCount() (int, error)

	// PageText returns decoded text for the given page, line breaks
	// preserved as laid out on the page.
	PageText(page int) (string, error)

	// PageWords returns every token on the page in natural reading order,
	// each with its bounding box in page-coordinate points.
	PageWords(page int) ([]models.Word, error)

	// PageTables returns the rectangular tables Poppler's layout heuristics
	// find on the page. Cells may contain embedded newlines.
	PageTables(page int) ([]models.Table, error)

	// RenderPage rasterizes the page at the given DPI and returns PNG bytes.
	RenderPage(page int, dpi int) ([]byte, error)

	// Close releases any temporary resources held for the document.
	Close() error
}

// Opener constructs an Access for a PDF file on disk. Production code uses
// PopplerOpener; tests substitute a fake.
type Opener interface {
	Open(path string) (Access, error)
}
