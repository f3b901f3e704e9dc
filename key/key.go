// Package key decodes raw terminal bytes into logical key events. It is a
// pure state machine over anything that can yield one byte at a time; it
// has no terminal-mode knowledge of its own.
package key

import "io"

// Kind discriminates the named arms of a Key event. Modeling the
// decoder's result as a tagged union rather than a widened integer keeps
// printable bytes, control chords and named keys from colliding in one
// numeric space.
type Kind int

const (
	Printable Kind = iota
	Enter
	Backspace
	Escape
	Delete
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	PageUp
	PageDown
	Home
	End
	Ctrl // chord; Byte holds the un-maked original letter's control code
)

// Key is one decoded key event. For Printable and Ctrl, Byte carries the
// raw byte value; the named-key Kinds carry no payload.
type Key struct {
	Kind Kind
	Byte byte
}

const (
	backspaceByte = 0x7f
	escapeByte    = 0x1b
	enterByte     = '\r'
)

// CtrlKey computes the control-chord byte for an ASCII letter: Ctrl-X is
// X & 0x1F.
func CtrlKey(b byte) byte { return b & 0x1f }

// Decoder reads bytes one at a time from r and decodes them into Key
// events.
type Decoder struct {
	r io.ByteReader
}

// NewDecoder wraps r, which must support buffered single-byte reads (the
// caller supplies this seam so the Decoder itself never blocks on more
// than the first byte of a sequence indefinitely).
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: r}
}

// readByte returns a byte and whether one was available; io.EOF and "no
// data yet" are both reported as !ok so escape-sequence parsing degrades
// gracefully.
func (d *Decoder) readByte() (byte, bool) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

// Next blocks for the first byte of a key, then decodes it (and, for an
// escape sequence, up to three more bytes) into a single Key event. A
// malformed or short escape sequence degrades to a bare Escape key.
func (d *Decoder) Next() (Key, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch {
	case b == escapeByte:
		return d.decodeEscape(), nil
	case b == backspaceByte:
		return Key{Kind: Backspace}, nil
	case b == enterByte:
		return Key{Kind: Enter}, nil
	case b < 0x20:
		return Key{Kind: Ctrl, Byte: b}, nil
	default:
		return Key{Kind: Printable, Byte: b}, nil
	}
}

// Next's first ReadByte call is the only point at which it may suspend
// indefinitely, waiting for the first byte of the next key. The
// underlying reader is expected to retry internally on "no data yet"
// conditions (EAGAIN-style) and only return an error on a fatal read
// failure or EOF.

func (d *Decoder) decodeEscape() Key {
	first, ok := d.readByte()
	if !ok {
		return Key{Kind: Escape}
	}
	second, ok := d.readByte()
	if !ok {
		return Key{Kind: Escape}
	}

	switch first {
	case '[':
		if second >= '0' && second <= '9' {
			third, ok := d.readByte()
			if !ok {
				return Key{Kind: Escape}
			}
			if third != '~' {
				return Key{Kind: Escape}
			}
			switch second {
			case '1', '7':
				return Key{Kind: Home}
			case '3':
				return Key{Kind: Delete}
			case '4', '8':
				return Key{Kind: End}
			case '5':
				return Key{Kind: PageUp}
			case '6':
				return Key{Kind: PageDown}
			default:
				return Key{Kind: Escape}
			}
		}
		switch second {
		case 'A':
			return Key{Kind: ArrowUp}
		case 'B':
			return Key{Kind: ArrowDown}
		case 'C':
			return Key{Kind: ArrowRight}
		case 'D':
			return Key{Kind: ArrowLeft}
		case 'H':
			return Key{Kind: Home}
		case 'F':
			return Key{Kind: End}
		default:
			return Key{Kind: Escape}
		}
	case 'O':
		switch second {
		case 'H':
			return Key{Kind: Home}
		case 'F':
			return Key{Kind: End}
		default:
			return Key{Kind: Escape}
		}
	default:
		return Key{Kind: Escape}
	}
}
