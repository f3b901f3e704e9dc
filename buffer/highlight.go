package buffer

import "github.com/mbrdg/kilo-go/syntax"

// highlight fills row.HL from row.Render, given the profile in effect (nil
// disables all highlighting) and whether the previous row ended inside an
// open multi-line comment. It reports whether row.OpenMLComment changed,
// which is the signal the caller uses to decide whether to cascade into
// the next row.
func highlight(row *Row, profile *syntax.Profile, prevOpenComment bool) (changed bool) {
	row.HL = make([]syntax.Attr, len(row.Render))
	if profile == nil {
		wasOpen := row.OpenMLComment
		row.OpenMLComment = false
		return wasOpen != row.OpenMLComment
	}

	render := row.Render
	prevSep := true
	inString := byte(0)
	inComment := prevOpenComment

	scs := []byte(profile.SingleLineComment)
	mcs := []byte(profile.MultiLineBegin)
	mce := []byte(profile.MultiLineEnd)

	i := 0
	for i < len(render) {
		c := render[i]
		var prevHL syntax.Attr
		if i > 0 {
			prevHL = row.HL[i-1]
		}

		if len(scs) > 0 && inString == 0 && !inComment && hasPrefixAt(render, i, scs) {
			for j := i; j < len(render); j++ {
				row.HL[j] = syntax.Comment
			}
			break
		}

		if len(mcs) > 0 && len(mce) > 0 && inString == 0 {
			if inComment {
				row.HL[i] = syntax.MultilineComment
				if hasPrefixAt(render, i, mce) {
					for k := 0; k < len(mce); k++ {
						row.HL[i+k] = syntax.MultilineComment
					}
					i += len(mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if hasPrefixAt(render, i, mcs) {
				for k := 0; k < len(mcs); k++ {
					row.HL[i+k] = syntax.MultilineComment
				}
				i += len(mcs)
				inComment = true
				continue
			}
		}

		if profile.HighlightStrings {
			if inString != 0 {
				row.HL[i] = syntax.String
				if c == '\\' && i+1 < len(render) {
					row.HL[i+1] = syntax.String
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
				row.HL[i] = syntax.String
				i++
				continue
			}
		}

		if profile.HighlightNumbers {
			if (isDigit(c) && (prevSep || prevHL == syntax.Number)) ||
				(c == '.' && prevHL == syntax.Number) {
				row.HL[i] = syntax.Number
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, matched := matchKeyword(render[i:], profile); matched {
				attr := syntax.Keyword1
				if kw.secondary {
					attr = syntax.Keyword2
				}
				for k := 0; k < kw.length; k++ {
					row.HL[i+k] = attr
				}
				i += kw.length
				prevSep = false
				continue
			}
		}

		prevSep = syntax.IsSeparator(c)
		i++
	}

	wasOpen := row.OpenMLComment
	row.OpenMLComment = inComment
	return wasOpen != row.OpenMLComment
}

type keywordMatch struct {
	length    int
	secondary bool
}

// matchKeyword tests whether render begins with one of profile's keywords
// followed by a separator (or end of input).
func matchKeyword(render []byte, profile *syntax.Profile) (keywordMatch, bool) {
	for _, kw := range profile.KeywordsPrimary {
		if m, ok := matchOneKeyword(render, kw, false); ok {
			return m, true
		}
	}
	for _, kw := range profile.KeywordsSecondary {
		if m, ok := matchOneKeyword(render, kw, true); ok {
			return m, true
		}
	}
	return keywordMatch{}, false
}

func matchOneKeyword(render []byte, kw string, secondary bool) (keywordMatch, bool) {
	n := len(kw)
	if len(render) < n || string(render[:n]) != kw {
		return keywordMatch{}, false
	}
	var next byte
	if len(render) > n {
		next = render[n]
	}
	if len(render) > n && !syntax.IsSeparator(next) {
		return keywordMatch{}, false
	}
	return keywordMatch{length: n, secondary: secondary}, true
}

func hasPrefixAt(b []byte, i int, prefix []byte) bool {
	if i+len(prefix) > len(b) {
		return false
	}
	for k, p := range prefix {
		if b[i+k] != p {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
