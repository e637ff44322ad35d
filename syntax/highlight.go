package syntax

import "strings"

const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether r ends a word for keyword and number matching.
func IsSeparator(r rune) bool {
	return r == 0 || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f' ||
		strings.ContainsRune(separators, r)
}

// HighlightLine classifies every rendered rune of one line.
//
// inBlock is the exit state of the previous line. The returned slice always
// has len(rendered) entries; open reports whether the line ends inside a
// block comment. With nil rules every rune is Normal and open is false.
func HighlightLine(rendered []rune, rules *Rules, inBlock bool) (hl []Category, open bool) {
	hl = make([]Category, len(rendered))
	if rules == nil {
		return hl, false
	}

	scs := []rune(rules.LineComment)
	var mcs, mce []rune
	blocks := rules.hasBlockComments()
	if blocks {
		mcs = []rune(rules.BlockStart)
		mce = []rune(rules.BlockEnd)
	} else {
		inBlock = false
	}

	prevSep := true
	var inString rune
	inComment := inBlock

	n := len(rendered)
	for i := 0; i < n; {
		c := rendered[i]
		prevHL := Normal
		if i > 0 {
			prevHL = hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && hasPrefixAt(rendered, i, scs) {
			fill(hl[i:], Comment)
			break
		}

		if blocks && inString == 0 {
			if inComment {
				hl[i] = BlockComment
				if hasPrefixAt(rendered, i, mce) {
					fill(hl[i:i+len(mce)], BlockComment)
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			}
			if hasPrefixAt(rendered, i, mcs) {
				fill(hl[i:i+len(mcs)], BlockComment)
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if rules.Flags&HighlightStrings != 0 {
			if inString != 0 {
				hl[i] = String
				if c == '\\' && i+1 < n {
					hl[i+1] = String
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = String
				i++
				continue
			}
		}

		if rules.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevSep || prevHL == Number)) || (c == '.' && prevHL == Number) {
				hl[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, ok := keywordAt(rendered, i, rules.Keywords); ok {
				fill(hl[i:i+len(kw.text)], kw.cat)
				i += len(kw.text)
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return hl, inComment
}

type keywordHit struct {
	text []rune
	cat  Category
}

// keywordAt returns the longest keyword starting at i that is followed by a
// separator or the end of the line.
func keywordAt(s []rune, i int, kws []Keyword) (keywordHit, bool) {
	for _, kw := range kws {
		text := []rune(kw.Text)
		if len(text) == 0 || !hasPrefixAt(s, i, text) {
			continue
		}
		end := i + len(text)
		if end < len(s) && !IsSeparator(s[end]) {
			continue
		}
		return keywordHit{text: text, cat: kw.Category()}, true
	}
	return keywordHit{}, false
}

func hasPrefixAt(s []rune, i int, prefix []rune) bool {
	if len(prefix) == 0 || i+len(prefix) > len(s) {
		return false
	}
	for j, r := range prefix {
		if s[i+j] != r {
			return false
		}
	}
	return true
}

func fill(hl []Category, c Category) {
	for i := range hl {
		hl[i] = c
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
