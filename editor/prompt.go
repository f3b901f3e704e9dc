package editor

import (
	"strings"

	"github.com/mbrdg/kilo-go/key"
)

// promptResult is what prompt returns: the final buffer contents and
// whether the prompt was confirmed with Enter (ok) or cancelled with
// Escape (!ok). A cancelled prompt is a normal user action, not an error.
type promptResult struct {
	text string
	ok   bool
}

// prompt runs an interactive status-bar prompt: it echoes the typed
// query, calls onKey (if non-nil) after every key that changes the query
// or signals direction (arrows), and ends on Enter (confirmed) or Escape
// (cancelled). Enter is ignored while the query is empty.
func (e *Editor) prompt(format string, onKey func(query string, k key.Key)) promptResult {
	var buf strings.Builder

	for {
		e.SetStatusMessage(format, buf.String())
		if err := e.refreshScreen(); err != nil {
			return promptResult{ok: false}
		}

		k, err := e.dec.Next()
		if err != nil {
			return promptResult{ok: false}
		}

		switch k.Kind {
		case key.Enter:
			if buf.Len() == 0 {
				continue
			}
			e.SetStatusMessage("")
			return promptResult{text: buf.String(), ok: true}
		case key.Escape:
			e.SetStatusMessage("")
			return promptResult{ok: false}
		case key.Backspace, key.Delete, key.Ctrl:
			if k.Kind == key.Ctrl && k.Byte != key.CtrlKey('h') {
				continue
			}
			if buf.Len() > 0 {
				s := buf.String()
				buf.Reset()
				buf.WriteString(s[:len(s)-1])
			}
			if onKey != nil {
				onKey(buf.String(), k)
			}
		case key.ArrowUp, key.ArrowDown, key.ArrowLeft, key.ArrowRight:
			if onKey != nil {
				onKey(buf.String(), k)
			}
		case key.Printable:
			buf.WriteByte(k.Byte)
			if onKey != nil {
				onKey(buf.String(), k)
			}
		default:
			// Home, End, PageUp, PageDown and anything else: ignored
			// while prompting.
		}
	}
}
