package editor

import (
	"github.com/mbrdg/kilo-go/key"
	"github.com/mbrdg/kilo-go/syntax"
)

// searchState holds the incremental search engine's state across
// keystrokes of one prompt session.
type searchState struct {
	lastMatch int // row index of the last match, or -1
	direction int // +1 forward, -1 backward

	savedRow  int
	savedHL   []syntax.Attr
	haveSaved bool
}

// restoreSearchHighlight undoes the Match overlay applied by the previous
// keystroke, so stale match highlights never accumulate.
func (e *Editor) restoreSearchHighlight() {
	if !e.search.haveSaved {
		return
	}
	if e.search.savedRow < e.buf.RowCount() {
		copy(e.buf.Row(e.search.savedRow).HL, e.search.savedHL)
	}
	e.search.haveSaved = false
	e.search.savedHL = nil
}

// findNext scans forward/backward from lastMatch for query as a byte
// substring of each row's rendered bytes, wrapping at both ends.
func (e *Editor) findNext(query string) {
	e.restoreSearchHighlight()

	if query == "" {
		return
	}
	if e.search.lastMatch == -1 {
		e.search.direction = 1
	}

	n := e.buf.RowCount()
	if n == 0 {
		return
	}
	current := e.search.lastMatch
	for i := 0; i < n; i++ {
		current += e.search.direction
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}

		row := e.buf.Row(current)
		idx := indexOf(string(row.Render), query)
		if idx < 0 {
			continue
		}

		e.search.lastMatch = current
		e.cursorY = current
		e.cursorX = row.RenderToRaw(idx)
		e.rowOffset = e.buf.RowCount() // force a scroll to bring the match into view

		e.search.savedRow = current
		e.search.savedHL = append([]syntax.Attr(nil), row.HL...)
		e.search.haveSaved = true
		for k := 0; k < len(query); k++ {
			row.HL[idx+k] = syntax.Match
		}
		return
	}
}

func indexOf(haystack, needle string) int {
	n, m := len(haystack), len(needle)
	if m == 0 || m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if haystack[i:i+m] == needle {
			return i
		}
	}
	return -1
}

// runSearch runs the interactive Ctrl-F prompt.
func (e *Editor) runSearch() {
	savedX, savedY := e.cursorX, e.cursorY
	savedColOff, savedRowOff := e.colOffset, e.rowOffset

	e.search = searchState{lastMatch: -1, direction: 1}

	result := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, k key.Key) {
		// Only arrows and content-changing keys reach this callback
		// (prompt handles Enter/Escape as terminal actions itself).
		switch k.Kind {
		case key.ArrowRight, key.ArrowDown:
			e.search.direction = 1
		case key.ArrowLeft, key.ArrowUp:
			e.search.direction = -1
		default:
			e.search.direction = 1
			e.search.lastMatch = -1
		}
		e.findNext(query)
	})

	if !result.ok {
		e.cursorX, e.cursorY = savedX, savedY
		e.colOffset, e.rowOffset = savedColOff, savedRowOff
		e.restoreSearchHighlight()
	}
	// On Enter the cursor stays at the match, but the match highlight from
	// the final findNext call is cleared here as well, since the prompt has
	// ended.
	e.restoreSearchHighlight()
}
