// Package term is the raw terminal I/O layer. It owns the controlling TTY:
// it snapshots and restores terminal attributes, measures the window, and
// exposes byte-level read/write primitives, guaranteeing restoration on
// every exit path.
package term

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrTerminalUnavailable is returned when the terminal attribute get/set
// syscalls fail.
var ErrTerminalUnavailable = errors.New("terminal unavailable")

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETA
)

// Terminal owns the controlling TTY identified by fd (normally
// os.Stdin.Fd()) and its saved attributes.
type Terminal struct {
	fd       int
	orig     unix.Termios
	haveOrig bool
}

// New returns a Terminal bound to fd. It does not itself touch terminal
// mode; call EnterRaw to do that.
func New(fd int) *Terminal {
	return &Terminal{fd: fd}
}

// EnterRaw snapshots the current terminal attributes and switches the
// terminal to raw mode: no echo, no canonical line buffering, no
// signal-generating keys, no extended input processing, no break-to-
// interrupt, no CR-to-NL translation, no parity checking, no 8th-bit
// stripping, no software flow control, and no output post-processing;
// forces 8-bit characters.
func (t *Terminal) EnterRaw() error {
	orig, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("%w: get attributes: %v", ErrTerminalUnavailable, err)
	}
	t.orig = *orig
	t.haveOrig = true

	raw := *orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("%w: set attributes: %v", ErrTerminalUnavailable, err)
	}
	return nil
}

// LeaveRaw reapplies the snapshot taken by EnterRaw. It is idempotent: if
// EnterRaw was never called successfully, it does nothing.
func (t *Terminal) LeaveRaw() error {
	if !t.haveOrig {
		return nil
	}
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.orig); err != nil {
		return fmt.Errorf("%w: restore attributes: %v", ErrTerminalUnavailable, err)
	}
	return nil
}

// MeasureWindow returns the terminal's current size in (rows, cols). It
// prefers an ioctl; on failure it falls back to moving the cursor to the
// bottom-right corner and parsing the cursor-position reply.
func (t *Terminal) MeasureWindow() (rows, cols int, err error) {
	ws, ioctlErr := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if ioctlErr == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}

	if err := t.WriteAll([]byte("\x1b[999C\x1b[999B")); err != nil {
		return 0, 0, err
	}
	if err := t.WriteAll([]byte("\x1b[6n")); err != nil {
		return 0, 0, err
	}
	return t.readCursorPosition()
}

// readCursorPosition parses a "ESC[<r>;<c>R" reply byte by byte from the
// terminal, as written after a Device Status Report request.
func (t *Terminal) readCursorPosition() (rows, cols int, err error) {
	var buf bytes.Buffer
	for buf.Len() < 32 {
		b, err := t.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if b == 'R' {
			break
		}
		buf.WriteByte(b)
	}
	reply := buf.Bytes()
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, fmt.Errorf("%w: malformed cursor position reply", ErrTerminalUnavailable)
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("%w: parsing cursor position: %v", ErrTerminalUnavailable, err)
	}
	return rows, cols, nil
}

// ReadByte blocks until one byte is read from the terminal, retrying on
// transient EAGAIN/EINTR conditions and returning a fatal error otherwise.
func (t *Terminal) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := unix.Read(t.fd, buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err == nil || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			continue
		}
		return 0, fmt.Errorf("read byte: %w", err)
	}
}

// WriteAll writes the full contents of p to the terminal, retrying on
// short writes and returning a fatal error if writing stalls entirely.
func (t *Terminal) WriteAll(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Write(t.fd, p)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("write: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("write: no progress")
		}
		p = p[n:]
	}
	return nil
}

// ClearScreen emits ESC[2J ESC[H so a fatal error does not leave the
// terminal in a corrupted state. Errors writing
// the clear sequence itself are ignored: the process is already on its
// way out with a more important error to report.
func (t *Terminal) ClearScreen() {
	_ = t.WriteAll([]byte("\x1b[2J\x1b[H"))
}
