package blocker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adblockgo/adblockgo/filters"
)

func TestUseTagsRebuildsTaggedBucket(t *testing.T) {
	b := New(true)
	b.TaggedFiltersAll = []filters.NetworkFilter{
		{Pattern: "fb-widget", Tag: "social", ID: 1},
		{Pattern: "twtr-widget", Tag: "social", ID: 2},
		{Pattern: "annoyance", Tag: "annoyances", ID: 3},
	}

	b.UseTags([]string{"social"})
	require.Equal(t, 2, b.FiltersTagged.Len())
	assert.True(t, b.TagEnabled("social"))
	assert.False(t, b.TagEnabled("annoyances"))

	b.UseTags([]string{"annoyances"})
	require.Equal(t, 1, b.FiltersTagged.Len())
	assert.Equal(t, "annoyance", b.FiltersTagged.Filters[0].Pattern)

	b.UseTags(nil)
	assert.Zero(t, b.FiltersTagged.Len())
}

func TestPushPreservesOrder(t *testing.T) {
	var l NetworkFilterList
	l.Push(filters.NetworkFilter{ID: 3})
	l.Push(filters.NetworkFilter{ID: 1})
	l.Push(filters.NetworkFilter{ID: 2})

	require.Equal(t, 3, l.Len())
	assert.Equal(t, uint64(3), l.Filters[0].ID)
	assert.Equal(t, uint64(1), l.Filters[1].ID)
	assert.Equal(t, uint64(2), l.Filters[2].ID)
}
