package editor

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mbrdg/kilo-go/syntax"
)

const helpText = "HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit"

// refreshScreen builds one complete frame and writes it atomically. It
// always scrolls first so the cursor position used at the end reflects
// the current key.
func (e *Editor) refreshScreen() error {
	e.scroll()

	var buf bytes.Buffer
	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	e.drawTitleBar(&buf)
	e.drawRows(&buf)
	e.drawStatusBar(&buf)
	buf.WriteString("\x1b[7m")
	e.drawFilledLine(&buf, helpText)
	buf.WriteString("\x1b[m\r\n")
	e.drawMessageBar(&buf)

	gutter := gutterWidth(e.buf.RowCount())
	fmt.Fprintf(&buf, "\x1b[%d;%dH",
		(e.cursorY-e.rowOffset)+2,
		(e.renderX-e.colOffset)+gutter+2)

	buf.WriteString("\x1b[?25h")
	return e.term.WriteAll(buf.Bytes())
}

// drawTitleBar draws the centred, reverse-video top title bar.
func (e *Editor) drawTitleBar(buf *bytes.Buffer) {
	buf.WriteString("\x1b[7m")
	title := "gokilo -- version " + Version
	e.drawFilledLine(buf, centered(title, e.screenCols))
	buf.WriteString("\x1b[m\r\n")
}

func centered(s string, width int) string {
	if width < 0 {
		width = 0
	}
	if len(s) >= width {
		return s[:width]
	}
	pad := (width - len(s)) / 2
	out := make([]byte, 0, width)
	for i := 0; i < pad; i++ {
		out = append(out, ' ')
	}
	out = append(out, s...)
	return string(out)
}

// drawFilledLine writes s then pads with spaces up to screenCols, never
// writing past it.
func (e *Editor) drawFilledLine(buf *bytes.Buffer, s string) {
	if len(s) > e.screenCols {
		s = s[:e.screenCols]
	}
	buf.WriteString(s)
	for i := len(s); i < e.screenCols; i++ {
		buf.WriteByte(' ')
	}
}

// drawRows renders the visible text rows with line numbers and per-byte
// colour switches.
func (e *Editor) drawRows(buf *bytes.Buffer) {
	gutter := gutterWidth(e.buf.RowCount())
	usableCols := e.screenCols - (gutter + 1)
	if usableCols < 0 {
		usableCols = 0
	}

	for y := 0; y < e.screenRows; y++ {
		fileRow := e.rowOffset + y
		if fileRow >= e.buf.RowCount() {
			if e.buf.RowCount() == 0 && e.buf.Filename() == "" && y == e.screenRows/3 {
				e.drawWelcome(buf)
			} else {
				buf.WriteByte('~')
			}
		} else {
			e.drawFileRow(buf, fileRow, gutter, usableCols)
		}
		buf.WriteString("\x1b[K\r\n")
	}
}

func (e *Editor) drawWelcome(buf *bytes.Buffer) {
	msg := fmt.Sprintf("gokilo editor -- version %s", Version)
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	pad := (e.screenCols - len(msg)) / 2
	if pad > 0 {
		buf.WriteByte('~')
		pad--
	}
	for i := 0; i < pad; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteString(msg)
}

func (e *Editor) drawFileRow(buf *bytes.Buffer, fileRow, gutter, usableCols int) {
	fmt.Fprintf(buf, "\x1b[%dm%*d \x1b[39m", syntax.ColorBrightYellow, gutter, fileRow+1)

	row := e.buf.Row(fileRow)
	length := len(row.Render) - e.colOffset
	if length < 0 {
		length = 0
	}
	if length > usableCols {
		length = usableCols
	}
	if length == 0 {
		return
	}

	render := row.Render[e.colOffset : e.colOffset+length]
	hl := row.HL[e.colOffset : e.colOffset+length]

	currentColor := -1
	for i, c := range render {
		if c < 32 || c == 127 {
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			fmt.Fprintf(buf, "\x1b[7m%c\x1b[m", sym)
			if currentColor != -1 {
				fmt.Fprintf(buf, "\x1b[%dm", currentColor)
			}
			continue
		}
		if hl[i] == syntax.Normal {
			if currentColor != -1 {
				buf.WriteString("\x1b[39m")
				currentColor = -1
			}
			buf.WriteByte(c)
			continue
		}
		color := hl[i].Color()
		if color != currentColor {
			fmt.Fprintf(buf, "\x1b[%dm", color)
			currentColor = color
		}
		buf.WriteByte(c)
	}
	buf.WriteString("\x1b[39m")
}

// drawStatusBar renders the bottom status bar.
func (e *Editor) drawStatusBar(buf *bytes.Buffer) {
	buf.WriteString("\x1b[7m")

	name := e.buf.Filename()
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}
	status := fmt.Sprintf("%s - %d lines", name, e.buf.RowCount())
	if e.buf.Dirty() {
		status += " (modified)"
	}
	rstatus := fmt.Sprintf("%s | %d/%d", e.buf.FileType(), e.cursorY+1, e.buf.RowCount())

	length := len(status)
	if length > e.screenCols {
		length = e.screenCols
		status = status[:length]
	}
	buf.WriteString(status)
	for length < e.screenCols {
		if e.screenCols-length == len(rstatus) {
			buf.WriteString(rstatus)
			break
		}
		buf.WriteByte(' ')
		length++
	}
	buf.WriteString("\x1b[m\r\n")
}

// drawMessageBar renders the transient message bar, clearing it after five
// seconds.
func (e *Editor) drawMessageBar(buf *bytes.Buffer) {
	buf.WriteString("\x1b[K")
	msg := e.statusMsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if len(msg) > 0 && time.Since(e.statusMsgTime) < 5*time.Second {
		buf.WriteString(msg)
	}
}
