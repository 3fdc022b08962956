package pdfaccess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsScanned(t *testing.T) {
	t.Run("text-heavy pages are not scanned", func(t *testing.T) {
		doc := NewMockAccess(5)
		dense := strings.Repeat("01 JAN 2024  GIRO PAYMENT  100.00  5,000.00\n", 10)
		doc.MockText[1] = dense
		doc.MockText[2] = dense
		doc.MockText[3] = dense

		scanned, err := IsScanned(doc, 20)
		require.NoError(t, err)
		assert.False(t, scanned)
	})

	t.Run("near-empty pages are scanned", func(t *testing.T) {
		doc := NewMockAccess(5)
		doc.MockText[1] = ""
		doc.MockText[2] = "1"
		doc.MockText[3] = ""

		scanned, err := IsScanned(doc, 20)
		require.NoError(t, err)
		assert.True(t, scanned)
	})

	t.Run("documents shorter than the sample window still resolve", func(t *testing.T) {
		doc := NewMockAccess(1)
		doc.MockText[1] = strings.Repeat("x", 50)

		scanned, err := IsScanned(doc, 20)
		require.NoError(t, err)
		assert.False(t, scanned)
	})

	t.Run("zero-page documents are treated as scanned", func(t *testing.T) {
		doc := NewMockAccess(0)
		scanned, err := IsScanned(doc, 20)
		require.NoError(t, err)
		assert.True(t, scanned)
	})
}
