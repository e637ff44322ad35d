package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/scribe/buffer"
	"github.com/iw2rmb/scribe/syntax"
)

func newDoc(lines ...string) *buffer.Document {
	d := buffer.New(buffer.Options{TabWidth: 4, Rules: syntax.Lookup("go")})
	d.Load(lines)
	return d
}

func TestSearcher_FindsOnlyMatchAndWraps(t *testing.T) {
	d := newDoc("alpha", "x := \tfoo()", "omega")
	s := New(d)

	m, ok := s.SetQuery("foo")
	require.True(t, ok)
	assert.Equal(t, 1, m.Row)
	assert.Equal(t, 8, m.RenderedCol)
	assert.Equal(t, 6, m.Col)

	hl := d.Row(1).Highlight()
	for i, c := range hl {
		if i >= 8 && i < 11 {
			assert.Equalf(t, syntax.Match, c, "rune %d", i)
		} else {
			assert.NotEqualf(t, syntax.Match, c, "rune %d", i)
		}
	}

	m, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, 1, m.Row)
	assert.Equal(t, 6, m.Col)
}

func TestSearcher_BackwardCycles(t *testing.T) {
	d := newDoc("foo", "bar", "foo")
	s := New(d)

	m, ok := s.SetQuery("foo")
	require.True(t, ok)
	assert.Equal(t, 0, m.Row)

	m, ok = s.Prev()
	require.True(t, ok)
	assert.Equal(t, 2, m.Row)
	assert.Equal(t, Backward, s.Direction())

	m, ok = s.Prev()
	require.True(t, ok)
	assert.Equal(t, 0, m.Row)
}

func TestSearcher_NoAnchorForcesForward(t *testing.T) {
	d := newDoc("foo", "foo", "foo")
	s := New(d)
	s.query = "foo"

	m, ok := s.Step(Backward)
	require.True(t, ok)
	assert.Equal(t, 0, m.Row)
	assert.Equal(t, Forward, s.Direction())
}

func TestSearcher_RestoresOverlayWhenMovingAndCancelling(t *testing.T) {
	d := newDoc("foo bar", "foo")
	before0 := d.Row(0).Highlight()
	before1 := d.Row(1).Highlight()
	s := New(d)

	_, ok := s.SetQuery("foo")
	require.True(t, ok)
	require.True(t, s.Active())

	_, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, before0, d.Row(0).Highlight(), "row 0 overlay must be restored after moving away")

	s.Cancel()
	assert.False(t, s.Active())
	assert.Equal(t, before1, d.Row(1).Highlight())
	assert.Equal(t, "", s.Query())
	_, anchored := s.Anchor()
	assert.False(t, anchored)
}

func TestSearcher_MissRestoresAndReportsNone(t *testing.T) {
	d := newDoc("foo")
	before := d.Row(0).Highlight()
	s := New(d)

	_, ok := s.SetQuery("fo")
	require.True(t, ok)

	_, ok = s.SetQuery("zzz")
	assert.False(t, ok)
	assert.False(t, s.Active())
	assert.Equal(t, before, d.Row(0).Highlight())

	_, ok = s.SetQuery("")
	assert.False(t, ok)
}

func TestSearcher_ResetKeepsQueryDropsAnchor(t *testing.T) {
	d := newDoc("a foo", "b foo")
	s := New(d)
	_, ok := s.SetQuery("foo")
	require.True(t, ok)
	_, ok = s.Prev()
	require.True(t, ok)

	s.Reset()
	assert.Equal(t, Forward, s.Direction())
	assert.Equal(t, "foo", s.Query())

	m, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 0, m.Row)
}

func TestSearcher_EmptyDocument(t *testing.T) {
	s := New(newDoc())
	_, ok := s.SetQuery("x")
	assert.False(t, ok)
}
