package pdfaccess

import (
	"fmt"

	"ledgerlens/extractcore/internal/models"
)

// MockAccess is a fake Access grounded on the deleted pdfparser package's
// MockPDFExtractor: fixed-response fields instead of a real PDF, so tier
// tests can exercise column discovery and row assembly without a Poppler
// binary on the test host.
type MockAccess struct {
	MockPageCount int
	MockText      map[int]string
	MockWords     map[int][]models.Word
	MockTables    map[int][]models.Table
	MockRender    map[int][]byte
	MockErr       error
}

// NewMockAccess builds an empty MockAccess ready to be populated by a test.
func NewMockAccess(pageCount int) *MockAccess {
	return &MockAccess{
		MockPageCount: pageCount,
		MockText:      map[int]string{},
		MockWords:     map[int][]models.Word{},
		MockTables:    map[int][]models.Table{},
		MockRender:    map[int][]byte{},
	}
}

func (m *MockAccess) PageCount() (int, error) {
	if m.MockErr != nil {
		return 0, m.MockErr
	}
	return m.MockPageCount, nil
}

func (m *MockAccess) PageText(page int) (string, error) {
	if m.MockErr != nil {
		return "", m.MockErr
	}
	text, ok := m.MockText[page]
	if !ok {
		return "", fmt.Errorf("mock access has no text fixture for page %d", page)
	}
	return text, nil
}

func (m *MockAccess) PageWords(page int) ([]models.Word, error) {
	if m.MockErr != nil {
		return nil, m.MockErr
	}
	return m.MockWords[page], nil
}

func (m *MockAccess) PageTables(page int) ([]models.Table, error) {
	if m.MockErr != nil {
		return nil, m.MockErr
	}
	return m.MockTables[page], nil
}

func (m *MockAccess) RenderPage(page int, dpi int) ([]byte, error) {
	if m.MockErr != nil {
		return nil, m.MockErr
	}
	data, ok := m.MockRender[page]
	if !ok {
		return nil, fmt.Errorf("mock access has no render fixture for page %d", page)
	}
	return data, nil
}

func (m *MockAccess) Close() error {
	return nil
}

// MockOpener always returns the same MockAccess regardless of path,
// grounded on the same fixed-response mock convention.
type MockOpener struct {
	Access *MockAccess
	Err    error
}

func (o *MockOpener) Open(path string) (Access, error) {
	if o.Err != nil {
		return nil, o.Err
	}
	return o.Access, nil
}
