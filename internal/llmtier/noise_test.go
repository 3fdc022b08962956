package llmtier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSkipPageWithNoTransactionalSignal(t *testing.T) {
	text := "Legend: DR - Debit, CR - Credit\n" + strings.Repeat("code meaning ", 400)
	assert.True(t, ShouldSkipPage(text))
}

func TestShouldSkipPageKeepsPageWithAmounts(t *testing.T) {
	text := "Legend: DR - Debit, CR - Credit\n01 Jan 2024 GIRO Payment 100.00 5,100.00"
	assert.False(t, ShouldSkipPage(text))
}

func TestShouldSkipPageEmptyText(t *testing.T) {
	assert.True(t, ShouldSkipPage(""))
}

func TestStripNoiseRemovesHSBCBoilerplate(t *testing.T) {
	text := "01 Jan 2024 GIRO Payment 100.00\nIssued by The Hongkong and Shanghai Banking Corporation\nPage 1 of 3"
	stripped := StripNoise(text, "HSBC")
	assert.NotContains(t, strings.ToLower(stripped), "hongkong and shanghai")
	assert.NotContains(t, stripped, "Page 1 of 3")
}

func TestStripNoiseRemovesDBSPrintedAndNonWorkingDayDisclaimers(t *testing.T) {
	text := "01 Jan 2024 GIRO Payment 100.00\n" +
		"Printed By: teller01\nPrinted On: 01 Jan 2024\n" +
		"Transactions performed on a non-working day will be processed the next business day.\n" +
		"If date requested is a non business day, the next working day is used."
	stripped := StripNoise(text, "DBS")
	lower := strings.ToLower(stripped)
	assert.NotContains(t, lower, "printed by")
	assert.NotContains(t, lower, "printed on")
	assert.NotContains(t, lower, "non-working day")
	assert.NotContains(t, lower, "non business day")
}
