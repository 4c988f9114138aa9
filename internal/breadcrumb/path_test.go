package breadcrumb

import (
	"encoding/json"
	"testing"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath_ExtendDoesNotMutateBase(t *testing.T) {
	base := New(Segment("top", "event", "Event"))

	a := base.Extend("event", api.SourceInfo{ID: "a", Title: "First", Index: api.IndexOf(0)})
	b := base.Extend("event", api.SourceInfo{ID: "b", Title: "Second", Index: api.IndexOf(1)})

	assert.Equal(t, 1, base.Len())
	assert.False(t, base.Has("event"))

	gotA, ok := a.Get("event")
	require.True(t, ok)
	assert.Equal(t, "a", gotA.ID)

	gotB, ok := b.Get("event")
	require.True(t, ok)
	assert.Equal(t, "b", gotB.ID)
	assert.Equal(t, 1, *gotB.Index)
}

func TestPath_KeepsInsertionOrder(t *testing.T) {
	p := New(
		Segment("top", "command", "Command"),
		Segment("commandType", "customCommands", "Custom Commands"),
	).Extend("command", api.SourceInfo{ID: "c1", Title: "!so"})

	assert.Equal(t, []string{"top", "commandType", "command"}, p.Keys())
	assert.Equal(t, []string{"Command", "Custom Commands", "!so"}, p.Titles())
}

func TestPath_ExtendExistingKeyStaysUnique(t *testing.T) {
	p := New(Segment("top", "event", "Event"), Segment("group", "g", "Group"))
	p = p.Extend("top", api.SourceInfo{ID: "other", Title: "Other"})

	assert.Equal(t, []string{"top", "group"}, p.Keys())
	top, _ := p.Get("top")
	assert.Equal(t, "Other", top.Title)
}

func TestPath_ZeroValue(t *testing.T) {
	var p Path
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has("top"))
	assert.Empty(t, p.Entries())

	p2 := p.Extend("top", api.SourceInfo{ID: "timer", Title: "Timer"})
	assert.Equal(t, 1, p2.Len())
	assert.Equal(t, 0, p.Len())
}

func TestPath_MarshalJSONKeepsOrder(t *testing.T) {
	p := New(
		Segment("top", "timer", "Timer"),
		Segment("b", "2", ""),
		Segment("a", "1", "One"),
	)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"top":{"id":"timer","title":"Timer"},"b":{"id":"2","title":""},"a":{"id":"1","title":"One"}}`, string(data))
}

func TestPath_MapIsACopy(t *testing.T) {
	p := New(Segment("top", "timer", "Timer"))
	m := p.Map()
	m.Set("extra", api.SourceInfo{ID: "x"})

	assert.Equal(t, 1, p.Len())
	assert.Equal(t, 2, m.Len())
}

func TestPath_IndexIsNotShared(t *testing.T) {
	index := 3
	p := New(Segment("top", "timer", "Timer")).Extend("timer", api.SourceInfo{ID: "t", Index: &index})
	index = 7

	got, _ := p.Get("timer")
	require.NotNil(t, got.Index)
	assert.Equal(t, 3, *got.Index)

	*got.Index = 10
	*p.Entries()[1].Index = 11
	info, _ := p.Map().Get("timer")
	*info.Index = 12

	again, _ := p.Get("timer")
	assert.Equal(t, 3, *again.Index)
}
