package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbrdg/kilo-go/syntax"
)

func TestRoundTripLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.c")
	original := "int x = 42;\nreturn x;\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	var b Buffer
	require.NoError(t, b.Load(path))

	out := filepath.Join(dir, "out.c")
	b.SetFilename(out)
	n, err := b.Save()
	require.NoError(t, err)
	assert.Equal(t, len(original), n)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, original, string(got))
	assert.False(t, b.Dirty())
}

func TestInsertDeleteCharInverse(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte("abc"))
	row := b.Row(0)

	before := append([]byte(nil), row.Raw...)
	beforeHL := append([]syntax.Attr(nil), row.HL...)

	b.RowInsertChar(row, 1, 'X')
	assert.Equal(t, "aXbc", string(b.Row(0).Raw))

	b.RowDeleteChar(b.Row(0), 1)
	assert.Equal(t, before, b.Row(0).Raw)
	assert.Equal(t, beforeHL, b.Row(0).HL)
}

func TestSplitRowAndJoin(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte("hello world"))

	row := b.Row(0)
	b.SplitRow(row, 5)

	require.Equal(t, 2, b.RowCount())
	assert.Equal(t, "hello", string(b.Row(0).Raw))
	assert.Equal(t, " world", string(b.Row(1).Raw))
	assert.Equal(t, 0, b.Row(0).Idx())
	assert.Equal(t, 1, b.Row(1).Idx())

	// Join back: append row 1's contents onto row 0, then delete row 1.
	r0, r1 := b.Row(0), b.Row(1)
	b.RowAppend(r0, r1.Raw)
	b.DeleteRow(1)

	require.Equal(t, 1, b.RowCount())
	assert.Equal(t, "hello world", string(b.Row(0).Raw))
}

func TestInsertRowShiftsIdx(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte("a"))
	b.InsertRow(1, []byte("b"))
	b.InsertRow(1, []byte("c")) // a, c, b

	require.Equal(t, 3, b.RowCount())
	assert.Equal(t, "a", string(b.Row(0).Raw))
	assert.Equal(t, "c", string(b.Row(1).Raw))
	assert.Equal(t, "b", string(b.Row(2).Raw))
	for i := 0; i < b.RowCount(); i++ {
		assert.Equal(t, i, b.Row(i).Idx())
	}
}

func TestTabRendering(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte("\tx"))
	row := b.Row(0)

	assert.Equal(t, "        x", string(row.Render))
	assert.Equal(t, 8, row.RawToRender(1))
}

func TestRowLenAndBoundsInvariant(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte("hi"))
	row := b.Row(0)
	assert.Equal(t, len(row.Render), len(row.HL))
	assert.Equal(t, 2, row.Len())
}
