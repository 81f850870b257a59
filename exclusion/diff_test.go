package exclusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff(t *testing.T) {
	before := New()
	before.Add("Order", "items")

	after := before.Clone()
	after.Add("Item", "order")

	diff, err := UnifiedDiff(before, after, "before.json", "after.json")
	require.NoError(t, err)
	assert.Contains(t, diff, "--- before.json")
	assert.Contains(t, diff, "+++ after.json")
	assert.Contains(t, diff, `+  "Item": [`)
	assert.Contains(t, diff, `+    "order"`)
}

func TestUnifiedDiff_IgnoresOrder(t *testing.T) {
	a := New()
	a.Add("Order", "items")
	a.Add("Item", "order")

	b := New()
	b.Add("Item", "order")
	b.Add("Order", "items")

	diff, err := UnifiedDiff(a, b, "a", "b")
	require.NoError(t, err)
	assert.Empty(t, diff)
}
