package key

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, input []byte) []Key {
	t.Helper()
	d := NewDecoder(bytes.NewReader(input))
	var out []Key
	for {
		k, err := d.Next()
		if err != nil {
			break
		}
		out = append(out, k)
	}
	return out
}

func TestDecodesPrintableAndControl(t *testing.T) {
	keys := decodeAll(t, []byte("a\r\x7f"))
	require.Len(t, keys, 3)
	assert.Equal(t, Key{Kind: Printable, Byte: 'a'}, keys[0])
	assert.Equal(t, Key{Kind: Enter}, keys[1])
	assert.Equal(t, Key{Kind: Backspace}, keys[2])
}

func TestDecodesCtrlChord(t *testing.T) {
	keys := decodeAll(t, []byte{CtrlKey('q'), CtrlKey('s'), CtrlKey('f')})
	require.Len(t, keys, 3)
	assert.Equal(t, Key{Kind: Ctrl, Byte: CtrlKey('q')}, keys[0])
	assert.Equal(t, Key{Kind: Ctrl, Byte: CtrlKey('s')}, keys[1])
	assert.Equal(t, Key{Kind: Ctrl, Byte: CtrlKey('f')}, keys[2])
}

func TestDecodesArrowKeys(t *testing.T) {
	keys := decodeAll(t, []byte("\x1b[A\x1b[B\x1b[C\x1b[D"))
	require.Len(t, keys, 4)
	assert.Equal(t, ArrowUp, keys[0].Kind)
	assert.Equal(t, ArrowDown, keys[1].Kind)
	assert.Equal(t, ArrowRight, keys[2].Kind)
	assert.Equal(t, ArrowLeft, keys[3].Kind)
}

func TestDecodesHomeEndViaLetterAndTilde(t *testing.T) {
	keys := decodeAll(t, []byte("\x1b[H\x1b[F\x1bOH\x1bOF\x1b[1~\x1b[4~"))
	require.Len(t, keys, 6)
	for _, k := range keys[:4] {
		assert.Contains(t, []Kind{Home, End}, k.Kind)
	}
	assert.Equal(t, Home, keys[4].Kind)
	assert.Equal(t, End, keys[5].Kind)
}

func TestDecodesPageUpDownAndDelete(t *testing.T) {
	keys := decodeAll(t, []byte("\x1b[5~\x1b[6~\x1b[3~"))
	require.Len(t, keys, 3)
	assert.Equal(t, PageUp, keys[0].Kind)
	assert.Equal(t, PageDown, keys[1].Kind)
	assert.Equal(t, Delete, keys[2].Kind)
}

func TestMalformedEscapeDegradesToEscape(t *testing.T) {
	keys := decodeAll(t, []byte{0x1b})
	require.Len(t, keys, 1)
	assert.Equal(t, Escape, keys[0].Kind)

	keys = decodeAll(t, []byte{0x1b, '['})
	require.Len(t, keys, 1)
	assert.Equal(t, Escape, keys[0].Kind)

	keys = decodeAll(t, []byte{0x1b, '[', '9'})
	require.Len(t, keys, 1)
	assert.Equal(t, Escape, keys[0].Kind)
}
