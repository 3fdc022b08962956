package llmtier

// Page is one page's noise-stripped text, carrying its 1-based page
// number so batches can be labeled for diagnostics.
type Page struct {
	Number int
	Text   string
}

// Batch is a contiguous run of pages submitted to the model as one call.
type Batch struct {
	Index int
	Pages []Page
}

// batchSizeFor implements §4.E step 4's adaptive sizing: mean characters
// per page determines how many pages share one model call.
func batchSizeFor(meanCharsPerPage float64) int {
	switch {
	case meanCharsPerPage > 1500:
		return 2
	case meanCharsPerPage > 1000:
		return 3
	default:
		return 5
	}
}

func meanChars(pages []Page) float64 {
	if len(pages) == 0 {
		return 0
	}
	total := 0
	for _, p := range pages {
		total += len(p.Text)
	}
	return float64(total) / float64(len(pages))
}

// BuildBatches groups pages into overlapping batches: each batch after the
// first repeats the previous batch's last page, so a transaction split
// across a page boundary is fully present in at least one batch.
func BuildBatches(pages []Page) []Batch {
	if len(pages) == 0 {
		return nil
	}

	size := batchSizeFor(meanChars(pages))
	var batches []Batch
	start := 0
	for start < len(pages) {
		end := start + size
		if end > len(pages) {
			end = len(pages)
		}
		batches = append(batches, Batch{Index: len(batches), Pages: pages[start:end]})
		if end == len(pages) {
			break
		}
		start = end - 1 // one-page overlap
	}
	return batches
}

// Text joins a batch's pages into the text submitted to the model.
func (b Batch) Text() string {
	var out string
	for i, p := range b.Pages {
		if i > 0 {
			out += "\n\n"
		}
		out += p.Text
	}
	return out
}
