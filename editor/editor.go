// Package editor implements the tightly-coupled core components that must
// stay consistent after every keystroke: the viewport and cursor, the
// compositor, the search engine, and the command dispatcher / main loop.
// They share one mutable Editor rather than being spread across packages
// with hidden globals.
package editor

import (
	"errors"
	"fmt"
	"time"

	"github.com/mbrdg/kilo-go/buffer"
	"github.com/mbrdg/kilo-go/key"
	"github.com/mbrdg/kilo-go/term"
)

// Version is the editor's self-reported version, shown in the title bar
// and welcome banner.
const Version = "0.1.0"

const quitTimes = 3

// ErrQuit is returned by Step when the user has confirmed an intentional
// exit; it is not a failure.
var ErrQuit = errors.New("quit requested")

// terminal is the subset of *term.Terminal the editor depends on; tests
// substitute a fake so the core can run without a real TTY.
type terminal interface {
	WriteAll(p []byte) error
	MeasureWindow() (rows, cols int, err error)
	ClearScreen()
}

// Editor is the mutable context passed explicitly through every
// component method — there is no hidden global editor state.
type Editor struct {
	term terminal
	dec  *key.Decoder
	buf  buffer.Buffer

	cursorX, cursorY     int
	renderX              int
	rowOffset, colOffset int
	screenRows, screenCols int

	statusMsg     string
	statusMsgTime time.Time

	quitRemaining int
	search        searchState
}

// New builds an Editor bound to t for output, measurement and key decoding
// (keys are read through key.NewDecoder(t)). Tests construct an Editor
// directly with a fake terminal and an independent reader instead.
func New(t *term.Terminal) (*Editor, error) {
	e := &Editor{
		term:          t,
		dec:           key.NewDecoder(t),
		quitRemaining: quitTimes,
	}
	rows, cols, err := t.MeasureWindow()
	if err != nil {
		return nil, fmt.Errorf("measure window: %w", err)
	}
	// Reserve the top title bar, bottom status bar, help line and message
	// bar so drawRows never overdraws them.
	e.screenRows = rows - 4
	if e.screenRows < 0 {
		e.screenRows = 0
	}
	e.screenCols = cols
	return e, nil
}

// OpenFile loads filename into the buffer, returning a fatal
// FileOpenFailed-equivalent error on failure.
func (e *Editor) OpenFile(filename string) error {
	return e.buf.Load(filename)
}

// SetStatusMessage sets the message-bar text and timestamps it, so it
// auto-clears five seconds after being shown.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusMsgTime = time.Now()
}

// Dirty reports whether the buffer has unsaved changes.
func (e *Editor) Dirty() bool { return e.buf.Dirty() }

// Cursor reports the current cursor position in buffer coordinates.
func (e *Editor) Cursor() (x, y int) { return e.cursorX, e.cursorY }

// RowCount reports the number of rows in the buffer.
func (e *Editor) RowCount() int { return e.buf.RowCount() }

// Step runs one main-loop iteration: compose and write a frame, read one
// key, dispatch it. It returns ErrQuit when the user has
// confirmed exit, and any other error is fatal.
func (e *Editor) Step() error {
	if err := e.refreshScreen(); err != nil {
		return err
	}
	k, err := e.dec.Next()
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}
	return e.dispatch(k)
}

// RunLoop drives Step until it returns ErrQuit or a fatal error.
func (e *Editor) RunLoop() error {
	for {
		err := e.Step()
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
