package editor

// gutterWidth returns the width of the line-number field: the number of
// decimal digits in rowCount, plus one. drawFileRow right-aligns each line
// number in a field this wide and follows it with one more space, so the
// gutter takes gutterWidth+1 screen columns.
func gutterWidth(rowCount int) int {
	digits := 1
	for n := rowCount; n >= 10; n /= 10 {
		digits++
	}
	return digits + 1
}

// scroll recomputes renderX and the row/column offsets so the cursor is
// always visible, and must run before every composition.
func (e *Editor) scroll() {
	e.renderX = 0
	if e.cursorY < e.buf.RowCount() {
		e.renderX = e.buf.Row(e.cursorY).RawToRender(e.cursorX)
	}

	if e.cursorY < e.rowOffset {
		e.rowOffset = e.cursorY
	}
	if e.cursorY >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cursorY - e.screenRows + 1
	}

	usableCols := e.screenCols - (gutterWidth(e.buf.RowCount()) + 1)
	if usableCols < 1 {
		usableCols = 1
	}
	if e.renderX < e.colOffset {
		e.colOffset = e.renderX
	}
	if e.renderX >= e.colOffset+usableCols {
		e.colOffset = e.renderX - usableCols + 1
	}
}

// moveCursor applies one arrow-key movement, respecting buffer bounds.
func (e *Editor) moveCursor(k arrow) {
	rowLen := func() int {
		if e.cursorY < e.buf.RowCount() {
			return e.buf.Row(e.cursorY).Len()
		}
		return 0
	}

	switch k {
	case arrowUp:
		if e.cursorY > 0 {
			e.cursorY--
		}
	case arrowDown:
		if e.cursorY < e.buf.RowCount() {
			e.cursorY++
		}
	case arrowLeft:
		if e.cursorX > 0 {
			e.cursorX--
		} else if e.cursorY > 0 {
			e.cursorY--
			e.cursorX = e.buf.Row(e.cursorY).Len()
		}
	case arrowRight:
		if e.cursorX < rowLen() {
			e.cursorX++
		} else if e.cursorY < e.buf.RowCount() {
			e.cursorY++
			e.cursorX = 0
		}
	}

	if e.cursorX > rowLen() {
		e.cursorX = rowLen()
	}
}

type arrow int

const (
	arrowUp arrow = iota
	arrowDown
	arrowLeft
	arrowRight
)

// pageMove implements PgUp/PgDn: jump to the top/bottom of the current
// screen, then move by one screen height.
func (e *Editor) pageMove(up bool) {
	if up {
		e.cursorY = e.rowOffset
	} else {
		e.cursorY = e.rowOffset + e.screenRows - 1
		if e.cursorY > e.buf.RowCount() {
			e.cursorY = e.buf.RowCount()
		}
	}
	dir := arrowDown
	if up {
		dir = arrowUp
	}
	for i := 0; i < e.screenRows; i++ {
		e.moveCursor(dir)
	}
}

// home sets cursorX to 0.
func (e *Editor) home() { e.cursorX = 0 }

// end sets cursorX to the current row's length; on the past-end row it is
// a no-op.
func (e *Editor) end() {
	if e.cursorY < e.buf.RowCount() {
		e.cursorX = e.buf.Row(e.cursorY).Len()
	}
}
