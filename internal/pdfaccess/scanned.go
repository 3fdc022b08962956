package pdfaccess

// ScannedPageSampleSize is how many leading pages the scanned-PDF heuristic
// samples, matching the original agent's is_scanned_pdf convention.
const ScannedPageSampleSize = 3

// IsScanned reports whether a document is scanned: its mean extractable
// character count over the first ScannedPageSampleSize pages falls below
// threshold. Scanned documents carry no usable text layer and route
// straight to Tier 3 with vision OCR (§4.A).
func IsScanned(doc Access, threshold int) (bool, error) {
	count, err := doc.PageCount()
	if err != nil {
		return false, err
	}
	sample := count
	if sample > ScannedPageSampleSize {
		sample = ScannedPageSampleSize
	}
	if sample == 0 {
		return true, nil
	}

	total := 0
	for page := 1; page <= sample; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			return false, err
		}
		total += len(text)
	}
	mean := total / sample
	return mean < threshold, nil
}
