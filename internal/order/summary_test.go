package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummaryItemAndTotalLines(t *testing.T) {
	text := BuildSummary(Payload{
		Name:      "Dara",
		OrderJSON: `{"items":[{"title":"A","qty":2,"price":"10.00"}],"total":20}`,
	})

	lines := strings.Split(text, "\n")
	assert.Equal(t, "🛒 *New Order*", lines[0])
	assert.Contains(t, lines, "• A × 2 = $20.00")
	assert.Equal(t, "*Total:* $20.00", lines[len(lines)-1])
}

func TestBuildSummaryMalformedJSON(t *testing.T) {
	text := BuildSummary(Payload{OrderJSON: `{not json at all`})

	assert.NotContains(t, text, "• ")
	assert.NotContains(t, text, "*Items:*")
	assert.True(t, strings.HasSuffix(text, "*Total:* $0.00"))
}

func TestBuildSummaryContactLineOrder(t *testing.T) {
	text := BuildSummary(Payload{
		Name:      "Dara",
		Phone:     "012345678",
		Note:      "leave at door",
		OrderJSON: `{"items":[],"total":0}`,
	})

	lines := strings.Split(text, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "*Name:* Dara", lines[1])
	assert.Equal(t, "*Phone:* 012345678", lines[2])
	assert.Equal(t, "*Note:* leave at door", lines[3])
	assert.Equal(t, "", lines[4])
}

func TestBuildSummaryOmitsEmptyContactLines(t *testing.T) {
	text := BuildSummary(Payload{OrderJSON: `{"items":[],"total":5}`})

	assert.NotContains(t, text, "*Name:*")
	assert.NotContains(t, text, "*Phone:*")
	assert.NotContains(t, text, "*Note:*")
	assert.Contains(t, text, "*Total:* $5.00")
}

func TestBuildSummaryItemDefaults(t *testing.T) {
	text := BuildSummary(Payload{
		OrderJSON: `{"items":[{"price":3},{"title":"B","qty":"x"}],"total":3}`,
	})

	// missing title and qty fall back to "Item" and 1; garbage qty keeps 1;
	// missing price is 0
	assert.Contains(t, text, "• Item × 1 = $3.00")
	assert.Contains(t, text, "• B × 1 = $0.00")
}

func TestBuildSummaryThousandsGrouping(t *testing.T) {
	text := BuildSummary(Payload{
		OrderJSON: `{"items":[{"title":"Ultrabook","qty":2,"price":899}],"total":1798}`,
	})

	assert.Contains(t, text, "• Ultrabook × 2 = $1,798.00")
	assert.Contains(t, text, "*Total:* $1,798.00")
}
