package pdfaccess

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/xerrors"
)

// PopplerOpener opens documents by shelling out to the Poppler command-line
// utilities, generalizing the exec.Command("pdftotext", "-layout", ...)
// pattern this codebase already used for its single-format PDF conversion
// path. There is no vendored PDF-parsing library in this module's
// dependency graph; every capability here is one more Poppler binary
// invocation rather than a CGo binding.
type PopplerOpener struct {
	PdftotextPath string
	PdftoppmPath  string
	PdfinfoPath   string
	Logger        logging.Logger
}

// NewPopplerOpener builds an Opener using the given binary paths. Empty
// paths fall back to resolving the binary name on $PATH.
func NewPopplerOpener(pdftotextPath, pdftoppmPath, pdfinfoPath string, logger logging.Logger) *PopplerOpener {
	if pdftotextPath == "" {
		pdftotextPath = "pdftotext"
	}
	if pdftoppmPath == "" {
		pdftoppmPath = "pdftoppm"
	}
	if pdfinfoPath == "" {
		pdfinfoPath = "pdfinfo"
	}
	return &PopplerOpener{PdftotextPath: pdftotextPath, PdftoppmPath: pdftoppmPath, PdfinfoPath: pdfinfoPath, Logger: logger}
}

// Open implements Opener. A pdfinfo failure here is the documented
// encrypted/corrupt-container case (§4.A), surfaced as ErrPdfUnreadable
// rather than a bare wrapped error so callers can errors.Is against it
// without ever reaching the pipeline's own zero-page check.
func (o *PopplerOpener) Open(path string) (Access, error) {
	doc := &popplerDoc{path: path, opener: o}
	count, err := doc.PageCount()
	if err != nil {
		return nil, xerrors.NewPdfUnreadable(path, "pdfinfo failed", err)
	}
	doc.pageCount = count
	return doc, nil
}

type popplerDoc struct {
	path      string
	opener    *PopplerOpener
	pageCount int
}

var pdfinfoPagesRe = regexp.MustCompile(`(?m)^Pages:\s+(\d+)`)

func (d *popplerDoc) PageCount() (int, error) {
	if d.pageCount > 0 {
		return d.pageCount, nil
	}
	out, err := runCapture(d.opener.PdfinfoPath, d.path)
	if err != nil {
		return 0, fmt.Errorf("pdfinfo failed for %s: %w", d.path, err)
	}
	m := pdfinfoPagesRe.FindSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("pdfinfo output for %s carried no Pages field", d.path)
	}
	n, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, fmt.Errorf("pdfinfo page count unparsable: %w", err)
	}
	return n, nil
}

func (d *popplerDoc) PageText(page int) (string, error) {
	pageArg := strconv.Itoa(page)
	out, err := runCapture(d.opener.PdftotextPath, "-layout", "-f", pageArg, "-l", pageArg, d.path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext -layout failed on page %d of %s: %w", page, d.path, err)
	}
	return string(out), nil
}

// bboxDoc mirrors the XML `pdftotext -bbox` emits: one <page> per requested
// page, one <word> per token with its bounding box in points.
type bboxDoc struct {
	XMLName xml.Name `xml:"doc"`
	Pages   []struct {
		Words []struct {
			XMin float64 `xml:"xMin,attr"`
			YMin float64 `xml:"yMin,attr"`
			XMax float64 `xml:"xMax,attr"`
			YMax float64 `xml:"yMax,attr"`
			Text string  `xml:",chardata"`
		} `xml:"word"`
	} `xml:"page"`
}

func (d *popplerDoc) PageWords(page int) ([]models.Word, error) {
	pageArg := strconv.Itoa(page)
	out, err := runCapture(d.opener.PdftotextPath, "-bbox", "-f", pageArg, "-l", pageArg, d.path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext -bbox failed on page %d of %s: %w", page, d.path, err)
	}
	var doc bboxDoc
	if err := xml.Unmarshal(out, &doc); err != nil {
		return nil, fmt.Errorf("unparsable bbox output for page %d of %s: %w", page, d.path, err)
	}
	var words []models.Word
	for _, p := range doc.Pages {
		for _, w := range p.Words {
			text := strings.TrimSpace(w.Text)
			if text == "" {
				continue
			}
			words = append(words, models.Word{
				Text:   text,
				X0:     w.XMin,
				X1:     w.XMax,
				Top:    w.YMin,
				Bottom: w.YMax,
			})
		}
	}
	return words, nil
}

// columnGapRe splits a -layout line into cells on runs of two or more
// spaces, the same gap convention Poppler's layout mode uses to keep
// aligned columns apart.
var columnGapRe = regexp.MustCompile(`\s{2,}`)

// PageTables derives ruled-looking tables from the same -layout text used
// by PageText: a run of consecutive lines that all split into the same
// number of whitespace-delimited cells is treated as one table. This is a
// heuristic, not a real ruling detector, but Poppler exposes no table
// primitive and every teacher use of pdftotext relied on -layout alone.
func (d *popplerDoc) PageTables(page int) ([]models.Table, error) {
	text, err := d.PageText(page)
	if err != nil {
		return nil, err
	}
	return tablesFromLayoutText(text), nil
}

// tablesFromLayoutText derives ruled-looking tables from -layout text: a
// run of consecutive lines that all split into the same number of
// whitespace-delimited cells is treated as one table. This is a heuristic,
// not a real ruling detector, but Poppler exposes no table primitive and
// every teacher use of pdftotext relied on -layout alone.
func tablesFromLayoutText(text string) []models.Table {
	lines := strings.Split(text, "\n")

	var tables []models.Table
	var current models.Table
	currentCols := -1

	flush := func() {
		if len(current) >= 2 {
			tables = append(tables, current)
		}
		current = nil
		currentCols = -1
	}

	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			flush()
			continue
		}
		cells := columnGapRe.Split(strings.TrimSpace(trimmed), -1)
		if len(cells) < 2 {
			flush()
			continue
		}
		if currentCols == -1 {
			currentCols = len(cells)
		}
		if len(cells) != currentCols {
			flush()
			currentCols = len(cells)
		}
		current = append(current, cells)
	}
	flush()

	return tables
}

func (d *popplerDoc) RenderPage(page int, dpi int) ([]byte, error) {
	pageArg := strconv.Itoa(page)
	out, err := runCapture(d.opener.PdftoppmPath, "-png", "-r", strconv.Itoa(dpi), "-f", pageArg, "-l", pageArg, "-singlefile", d.path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftoppm failed on page %d of %s: %w", page, d.path, err)
	}
	return out, nil
}

func (d *popplerDoc) Close() error {
	return nil
}

func runCapture(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
