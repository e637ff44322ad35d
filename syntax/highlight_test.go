package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classify(t *testing.T, line string, rules *Rules, inBlock bool) ([]Category, bool) {
	t.Helper()
	hl, open := HighlightLine([]rune(line), rules, inBlock)
	require.Len(t, hl, len([]rune(line)))
	return hl, open
}

func TestHighlightLine_NilRulesIsNormal(t *testing.T) {
	hl, open := classify(t, `if x == "y" // z`, nil, true)
	assert.False(t, open)
	for i, c := range hl {
		assert.Equalf(t, Normal, c, "rune %d", i)
	}
}

func TestHighlightLine_LineCommentRunsToEOL(t *testing.T) {
	c := Lookup("c")
	require.NotNil(t, c)

	hl, open := classify(t, "// comment text", c, false)
	assert.False(t, open)
	for i, got := range hl {
		assert.Equalf(t, Comment, got, "rune %d", i)
	}

	hl, _ = classify(t, "x = 1; // tail", c, false)
	assert.Equal(t, Normal, hl[0])
	assert.Equal(t, Number, hl[4])
	for i := 7; i < len(hl); i++ {
		assert.Equalf(t, Comment, hl[i], "rune %d", i)
	}
}

func TestHighlightLine_CommentMarkerInsideStringIsString(t *testing.T) {
	hl, _ := classify(t, `"a//b" x`, Lookup("go"), false)
	for i := 0; i < 6; i++ {
		assert.Equalf(t, String, hl[i], "rune %d", i)
	}
	assert.Equal(t, Normal, hl[7])
}

func TestHighlightLine_BlockCommentOpensAndCloses(t *testing.T) {
	c := Lookup("c")

	hl, open := classify(t, "int a; /* start", c, false)
	assert.True(t, open)
	assert.Equal(t, KeywordSecondary, hl[0])
	for i := 7; i < len(hl); i++ {
		assert.Equalf(t, BlockComment, hl[i], "rune %d", i)
	}

	hl, open = classify(t, "still */ if", c, true)
	assert.False(t, open)
	for i := 0; i < 8; i++ {
		assert.Equalf(t, BlockComment, hl[i], "rune %d", i)
	}
	assert.Equal(t, Normal, hl[8])
	assert.Equal(t, KeywordPrimary, hl[9])
	assert.Equal(t, KeywordPrimary, hl[10])
}

func TestHighlightLine_BlockStartInsideStringIgnored(t *testing.T) {
	_, open := classify(t, `s = "/*";`, Lookup("c"), false)
	assert.False(t, open)
}

func TestHighlightLine_StringEscapes(t *testing.T) {
	hl, _ := classify(t, `"a\"b" 1`, Lookup("go"), false)
	for i := 0; i < 6; i++ {
		assert.Equalf(t, String, hl[i], "rune %d", i)
	}
	assert.Equal(t, Normal, hl[6])
	assert.Equal(t, Number, hl[7])
}

func TestHighlightLine_NumbersNeedSeparatorBoundary(t *testing.T) {
	hl, _ := classify(t, "x1 3.14 a", Lookup("go"), false)
	assert.Equal(t, Normal, hl[1], "digit inside identifier")
	for i := 3; i <= 6; i++ {
		assert.Equalf(t, Number, hl[i], "rune %d", i)
	}
}

func TestHighlightLine_KeywordsRequireTrailingSeparator(t *testing.T) {
	g := Lookup("go")

	hl, _ := classify(t, "format", g, false)
	for i, c := range hl {
		assert.Equalf(t, Normal, c, "rune %d", i)
	}

	hl, _ = classify(t, "for(int)", g, false)
	assert.Equal(t, []Category{
		KeywordPrimary, KeywordPrimary, KeywordPrimary, Normal,
		KeywordSecondary, KeywordSecondary, KeywordSecondary, Normal,
	}, hl)
}

func TestHighlightLine_LongestKeywordWins(t *testing.T) {
	r := NewRules("t", nil, []string{"in"}, []string{"int"}, "", "", "", 0)
	hl, _ := classify(t, "int", r, false)
	assert.Equal(t, []Category{KeywordSecondary, KeywordSecondary, KeywordSecondary}, hl)
}

func TestHighlightLine_NoBlockCommentsIgnoresEntryState(t *testing.T) {
	hl, open := classify(t, "pass", Lookup("python"), true)
	assert.False(t, open)
	assert.Equal(t, KeywordPrimary, hl[0])
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "search-match", Match.String())
	assert.Equal(t, "block-comment", BlockComment.String())
	assert.Equal(t, "unknown", Category(200).String())
	assert.Len(t, Categories(), 8)
}
