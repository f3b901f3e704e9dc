package editor

import (
	"github.com/mbrdg/kilo-go/key"
)

// dispatch routes one decoded key to the buffer, viewport, or a command.
// Any key other than a repeated Ctrl-Q resets the quit-confirmation
// counter.
func (e *Editor) dispatch(k key.Key) error {
	isQuit := k.Kind == key.Ctrl && k.Byte == key.CtrlKey('q')

	switch {
	case isQuit:
		return e.handleQuit()
	case k.Kind == key.ArrowUp:
		e.moveCursor(arrowUp)
	case k.Kind == key.ArrowDown:
		e.moveCursor(arrowDown)
	case k.Kind == key.ArrowLeft:
		e.moveCursor(arrowLeft)
	case k.Kind == key.ArrowRight:
		e.moveCursor(arrowRight)
	case k.Kind == key.PageUp:
		e.pageMove(true)
	case k.Kind == key.PageDown:
		e.pageMove(false)
	case k.Kind == key.Home:
		e.home()
	case k.Kind == key.End:
		e.end()
	case k.Kind == key.Backspace || k.Kind == key.Delete || (k.Kind == key.Ctrl && k.Byte == key.CtrlKey('h')):
		e.deleteChar(k.Kind == key.Delete)
	case k.Kind == key.Enter:
		e.insertNewline()
	case k.Kind == key.Ctrl && k.Byte == key.CtrlKey('l'):
		// reserved, no-op
	case k.Kind == key.Escape:
		// reserved, no-op
	case k.Kind == key.Ctrl && k.Byte == key.CtrlKey('s'):
		e.save()
	case k.Kind == key.Ctrl && k.Byte == key.CtrlKey('f'):
		e.runSearch()
	case k.Kind == key.Ctrl && k.Byte == key.CtrlKey('i'):
		// Tab shares its byte value with Ctrl-I; insert it like any
		// other typed character.
		e.insertChar('\t')
	case k.Kind == key.Printable:
		e.insertChar(k.Byte)
	case k.Kind == key.Ctrl:
		// unmapped control chord: ignored
	}

	if !isQuit {
		e.quitRemaining = quitTimes
	}
	return nil
}

// handleQuit implements the Ctrl-Q dirty-quit guard: with an unsaved
// buffer, the first quitTimes consecutive presses only show a warning
// counting down the presses still needed, and the next one quits.
func (e *Editor) handleQuit() error {
	if e.buf.Dirty() && e.quitRemaining > 0 {
		e.SetStatusMessage(
			"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
			e.quitRemaining)
		e.quitRemaining--
		return nil
	}
	return ErrQuit
}

// insertChar inserts c at the cursor, appending an empty row first if the
// cursor is past the last row.
func (e *Editor) insertChar(c byte) {
	if e.cursorY == e.buf.RowCount() {
		e.buf.InsertRow(e.buf.RowCount(), nil)
	}
	row := e.buf.Row(e.cursorY)
	e.buf.RowInsertChar(row, e.cursorX, c)
	e.cursorX++
}

// insertNewline splits the current row at the cursor, or appends an empty
// row if the cursor is past the last row.
func (e *Editor) insertNewline() {
	if e.cursorY == e.buf.RowCount() {
		e.buf.InsertRow(e.buf.RowCount(), nil)
		e.cursorY++
		e.cursorX = 0
		return
	}
	row := e.buf.Row(e.cursorY)
	if e.cursorX == 0 {
		e.buf.InsertRow(e.cursorY, nil)
	} else {
		e.buf.SplitRow(row, e.cursorX)
	}
	e.cursorY++
	e.cursorX = 0
}

// deleteChar deletes one character at the cursor. If del
// is true (the Delete key), it first moves right by one so the deletion
// lands on the character that was under the cursor.
func (e *Editor) deleteChar(del bool) {
	if del {
		e.moveCursor(arrowRight)
	}
	if e.cursorY == e.buf.RowCount() {
		return
	}
	if e.cursorX == 0 && e.cursorY == 0 {
		return
	}

	row := e.buf.Row(e.cursorY)
	if e.cursorX > 0 {
		e.buf.RowDeleteChar(row, e.cursorX-1)
		e.cursorX--
		return
	}

	prev := e.buf.Row(e.cursorY - 1)
	e.cursorX = prev.Len()
	e.buf.RowAppend(prev, row.Raw)
	e.buf.DeleteRow(e.cursorY)
	e.cursorY--
}

// save implements Ctrl-S: prompt for a filename if the buffer is unnamed,
// serialize and write, and report the outcome in the message bar.
func (e *Editor) save() {
	if e.buf.Filename() == "" {
		result := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !result.ok {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.buf.SetFilename(result.text)
		e.buf.SelectProfile()
	}

	n, err := e.buf.Save()
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err.Error())
		return
	}
	e.SetStatusMessage("%d bytes written to disk", n)
}
