package llmtier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchSizeForThresholds(t *testing.T) {
	assert.Equal(t, 2, batchSizeFor(1600))
	assert.Equal(t, 3, batchSizeFor(1200))
	assert.Equal(t, 5, batchSizeFor(500))
}

func TestBuildBatchesOverlapsByOnePage(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: strings.Repeat("x", 200)},
		{Number: 2, Text: strings.Repeat("x", 200)},
		{Number: 3, Text: strings.Repeat("x", 200)},
		{Number: 4, Text: strings.Repeat("x", 200)},
		{Number: 5, Text: strings.Repeat("x", 200)},
		{Number: 6, Text: strings.Repeat("x", 200)},
	}
	batches := BuildBatches(pages)
	require.Len(t, batches, 2)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, pageNumbers(batches[0]))
	assert.Equal(t, []int{5, 6}, pageNumbers(batches[1]))
}

func TestBuildBatchesEmpty(t *testing.T) {
	assert.Nil(t, BuildBatches(nil))
}

func pageNumbers(b Batch) []int {
	var out []int
	for _, p := range b.Pages {
		out = append(out, p.Number)
	}
	return out
}
