package syntax

// Category is the highlight class of one rendered character.
type Category uint8

const (
	Normal Category = iota
	Number
	String
	Comment
	BlockComment
	KeywordPrimary
	KeywordSecondary
	Match
)

var categoryNames = [...]string{
	Normal:           "normal",
	Number:           "number",
	String:           "string",
	Comment:          "comment",
	BlockComment:     "block-comment",
	KeywordPrimary:   "keyword-primary",
	KeywordSecondary: "keyword-secondary",
	Match:            "search-match",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// Categories lists every category in declaration order.
func Categories() []Category {
	return []Category{Normal, Number, String, Comment, BlockComment, KeywordPrimary, KeywordSecondary, Match}
}
